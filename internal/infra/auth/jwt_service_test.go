package auth

import (
	"testing"
	"time"

	"accountd/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Token = secret

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret"))
	require.NoError(t, err)

	accountID := uuid.New()

	token, err := svc.Issue(accountID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsedID, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, parsedID)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("secret-a"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("secret-b"))
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret"))
	require.NoError(t, err)

	_, err = svc.Validate("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	// Negative TTL issues a token that is already expired.
	svc := &jwtService{secret: []byte("test-secret"), ttl: -time.Minute}

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
