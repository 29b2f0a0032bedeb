// Package prep contains the prepare-goods aggregate: a Package batches
// orders from one shop, snapshots their line items, and walks one of four
// delivery workflows determined by its delivery mode and destination type.
//
// The workflow table in workflow.go is the single source of truth for
// which status paths exist. Status moves strictly forward, one step at a
// time; the package rejects anything else with an InvalidTransitionError.
package prep
