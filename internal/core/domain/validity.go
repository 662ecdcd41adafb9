package domain

// IsValid reports whether the path passes through at least one coastal location.
// An empty path is never valid.
func IsValid(path []string, coastal CoastalSet) bool {
	for _, name := range path {
		if coastal.Has(name) {
			return true
		}
	}
	return false
}
