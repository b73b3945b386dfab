// Package service contains testify mocks for the domain service interfaces.
package service

import (
	"context"
	"testing"

	domainservice "accountd/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCredentialHasher is a mock implementation of service.CredentialHasher.
type MockCredentialHasher struct {
	mock.Mock
}

func NewMockCredentialHasher(t *testing.T) *MockCredentialHasher {
	m := &MockCredentialHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCredentialHasher) CreateSalt() ([]byte, error) {
	args := m.Called()
	if salt, ok := args.Get(0).([]byte); ok {
		return salt, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCredentialHasher) Hash(plaintext string, salt []byte) []byte {
	args := m.Called(plaintext, salt)

	return args.Get(0).([]byte)
}

func (m *MockCredentialHasher) Verify(plaintext string, salt, digest []byte) bool {
	args := m.Called(plaintext, salt, digest)

	return args.Bool(0)
}

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Issue(accountID uuid.UUID) (string, error) {
	args := m.Called(accountID)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(token string) (uuid.UUID, error) {
	args := m.Called(token)
	if id, ok := args.Get(0).(uuid.UUID); ok {
		return id, args.Error(1)
	}

	return uuid.Nil, args.Error(1)
}

// MockAccountValidator is a mock implementation of service.AccountValidator.
type MockAccountValidator struct {
	mock.Mock
}

func NewMockAccountValidator(t *testing.T) *MockAccountValidator {
	m := &MockAccountValidator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountValidator) IsValidEmail(s string) bool {
	args := m.Called(s)

	return args.Bool(0)
}

func (m *MockAccountValidator) IsValidCredential(s string) bool {
	args := m.Called(s)

	return args.Bool(0)
}

// MockEventPublisher is a mock implementation of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func NewMockEventPublisher(t *testing.T) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventPublisher) PublishAccountChanged(ctx context.Context, event *domainservice.AccountChangedEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *MockEventPublisher) PublishAccountDeleted(ctx context.Context, event *domainservice.AccountDeletedEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}
