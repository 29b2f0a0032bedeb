// Package directory contains the reference entities the fulfillment core
// resolves against: drivers who claim packages and warehouses that
// warehouse-bound workflows route through.
package directory
