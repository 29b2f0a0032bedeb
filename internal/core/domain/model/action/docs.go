// Package action contains the append-only audit trail entity. Every
// workflow transition and aftersales event writes one Action with a frozen
// order-state snapshot and the evidence photos captured on the spot.
package action
