package validation

import (
	"testing"

	"accountd/config"

	"github.com/stretchr/testify/assert"
)

func newDefaultValidator() *accountValidator {
	return NewAccountValidator(&config.Config{}).(*accountValidator)
}

func TestAccountValidator_IsValidEmail(t *testing.T) {
	v := newDefaultValidator()

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "simple address", email: "user@example.com", want: true},
		{name: "subdomain", email: "user@mail.example.co.uk", want: true},
		{name: "plus tag", email: "user+tag@example.com", want: true},
		{name: "empty", email: "", want: false},
		{name: "missing at", email: "userexample.com", want: false},
		{name: "missing local part", email: "@example.com", want: false},
		{name: "domain without dot", email: "user@localhost", want: false},
		{name: "display name form", email: "User <user@example.com>", want: false},
		{name: "spaces", email: "us er@example.com", want: false},
		{name: "double at", email: "user@@example.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.IsValidEmail(tt.email))
		})
	}
}

func TestAccountValidator_IsValidCredential_DefaultPolicy(t *testing.T) {
	v := newDefaultValidator()

	tests := []struct {
		name       string
		credential string
		want       bool
	}{
		{name: "meets all requirements", credential: "Password1", want: true},
		{name: "too short", credential: "Pass1", want: false},
		{name: "no uppercase", credential: "password1", want: false},
		{name: "no lowercase", credential: "PASSWORD1", want: false},
		{name: "no digit", credential: "Passwordx", want: false},
		{name: "empty", credential: "", want: false},
		{name: "exactly minimum length", credential: "Passwd12", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.IsValidCredential(tt.credential))
		})
	}
}

func TestAccountValidator_IsValidCredential_ConfiguredPolicy(t *testing.T) {
	cfg := &config.Config{
		CredentialPolicy: &config.CredentialPolicyConfig{
			MinLength:      4,
			MaxLength:      10,
			RequireSpecial: true,
		},
	}
	v := NewAccountValidator(cfg)

	assert.True(t, v.IsValidCredential("ab!d"))
	assert.False(t, v.IsValidCredential("abcd"), "special character required")
	assert.False(t, v.IsValidCredential("a!"), "below minimum length")
	assert.False(t, v.IsValidCredential("abcdefghij!"), "above maximum length")
}
