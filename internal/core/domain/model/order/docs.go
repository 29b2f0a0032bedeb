// Package order contains the per-order fulfillment entity. An order
// carries two status fields that move in lockstep: the shipping status,
// advanced by package-level workflow transitions, and the commercial
// status that closes when delivery completes.
package order
