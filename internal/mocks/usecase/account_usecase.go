// Package usecase contains testify mocks for the usecase interfaces.
package usecase

import (
	"context"
	"testing"

	appusecase "accountd/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountUsecase is a mock implementation of usecase.AccountUsecase.
type MockAccountUsecase struct {
	mock.Mock
}

func NewMockAccountUsecase(t *testing.T) *MockAccountUsecase {
	m := &MockAccountUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountUsecase) CreateAccount(ctx context.Context, input *appusecase.CreateAccountInput) (*appusecase.AccountOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*appusecase.AccountOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountUsecase) Authenticate(ctx context.Context, input *appusecase.AuthenticateInput) (*appusecase.AccountOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*appusecase.AccountOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountUsecase) GetAccount(ctx context.Context, id uuid.UUID) (*appusecase.AccountOutput, error) {
	args := m.Called(ctx, id)
	if output, ok := args.Get(0).(*appusecase.AccountOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountUsecase) ChangeCredential(ctx context.Context, input *appusecase.ChangeCredentialInput) (*appusecase.AccountOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*appusecase.AccountOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountUsecase) UpdateProfile(ctx context.Context, input *appusecase.UpdateProfileInput) (*appusecase.AccountOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*appusecase.AccountOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountUsecase) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
