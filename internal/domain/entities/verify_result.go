package entities

// Mismatch is a bucket whose configured submodule URL differs from the
// registry URL.
type Mismatch struct {
	Name          string
	RegistryURL   string
	ConfiguredURL string
}

// VerifyResult summarizes a verification pass of the .gitmodules
// configuration against the registry.
type VerifyResult struct {
	// Mismatched buckets exist in both places but point at different URLs.
	Mismatched []Mismatch
	// Unknown submodules are configured in the working copy but absent
	// from the registry.
	Unknown []string
	// Missing buckets are registered but not yet linked; sync adds them.
	Missing []string
}

// Clean reports whether the working copy's configuration agrees with the
// registry. Missing buckets do not count against it.
func (r *VerifyResult) Clean() bool {
	return len(r.Mismatched) == 0 && len(r.Unknown) == 0
}
