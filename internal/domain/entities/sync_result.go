package entities

// SyncResult summarizes a single reconciliation run. Added and Skipped hold
// bucket names in the order they were processed, which matches the registry
// file's declaration order.
type SyncResult struct {
	Added   []string
	Skipped []string
}
