// Package kernel contains the shared value objects of the fulfillment
// domain: the snowflake-backed ID, the legacy comma-separated id-list
// encoding, and the constructor guard used to keep entities from being
// created as bare zero values.
package kernel
