package usecase

import "strings"

// DeriveTenantID derives the URL-safe tenant identifier from a display name:
// lowercase, then every rune outside [a-z0-9] becomes exactly one underscore.
// "John Doe!!" -> "john_doe__". Deterministic, so duplicate detection is a
// plain recomputation.
func DeriveTenantID(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// validTenantID reports whether a derived id carries at least one
// alphanumeric rune. Ids like "" or "___" are unusable as webhook paths.
func validTenantID(id string) bool {
	return strings.Trim(id, "_") != ""
}
