package service

// AccountValidator checks email syntax and credential strength against
// policy. Both checks are total functions: any input yields true or false,
// never an error. The validator is injected into the usecase so tests can
// substitute policy.
type AccountValidator interface {
	// IsValidEmail reports whether s is syntactically a valid address
	// (local part, "@", domain containing a "."). No DNS verification.
	IsValidEmail(s string) bool

	// IsValidCredential reports whether s satisfies the configured strength
	// policy (minimum length, required character classes).
	IsValidCredential(s string) bool
}
