// Package validation implements the account validator: email syntax and
// credential strength checks as total functions with no side effects.
package validation

import (
	"net/mail"
	"strings"
	"unicode"

	"accountd/config"
	"accountd/internal/domain/service"
)

// Policy defaults applied when the config section is absent.
const (
	defaultMinLength = 8
	defaultMaxLength = 72
)

// accountValidator implements service.AccountValidator against a configured
// credential policy. The exact policy is a configuration concern; the
// contract is only that both checks are pure and never panic.
type accountValidator struct {
	minLength        int
	maxLength        int
	requireUppercase bool
	requireLowercase bool
	requireNumbers   bool
	requireSpecial   bool
}

// NewAccountValidator builds a validator from the credential policy config.
func NewAccountValidator(cfg *config.Config) service.AccountValidator {
	v := &accountValidator{
		minLength:        defaultMinLength,
		maxLength:        defaultMaxLength,
		requireUppercase: true,
		requireLowercase: true,
		requireNumbers:   true,
	}

	if policy := cfg.CredentialPolicy; policy != nil {
		if policy.MinLength > 0 {
			v.minLength = policy.MinLength
		}
		if policy.MaxLength > 0 {
			v.maxLength = policy.MaxLength
		}
		v.requireUppercase = policy.RequireUppercase
		v.requireLowercase = policy.RequireLowercase
		v.requireNumbers = policy.RequireNumbers
		v.requireSpecial = policy.RequireSpecial
	}

	return v
}

// IsValidEmail reports whether s parses as a bare address whose domain
// contains a dot. No DNS or deliverability verification is attempted.
func (v *accountValidator) IsValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	at := strings.LastIndex(s, "@")
	if at < 1 {
		return false
	}

	domain := s[at+1:]

	return strings.Contains(domain, ".")
}

// IsValidCredential reports whether s satisfies the configured policy:
// length bounds plus the required character classes.
func (v *accountValidator) IsValidCredential(s string) bool {
	if len(s) < v.minLength || len(s) > v.maxLength {
		return false
	}

	if v.requireUppercase && !containsClass(s, unicode.IsUpper) {
		return false
	}
	if v.requireLowercase && !containsClass(s, unicode.IsLower) {
		return false
	}
	if v.requireNumbers && !containsClass(s, unicode.IsDigit) {
		return false
	}
	if v.requireSpecial && !containsClass(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) {
		return false
	}

	return true
}

func containsClass(s string, match func(rune) bool) bool {
	for _, r := range s {
		if match(r) {
			return true
		}
	}

	return false
}
