package impl

import (
	"io"
	"log/slog"
	"testing"

	"accountd/internal/domain/entity"
	mockRepo "accountd/internal/mocks/repository"
	mockSvc "accountd/internal/mocks/service"
	"accountd/internal/usecase"

	"github.com/google/uuid"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockCredentialHasher
	tokenSvc    *mockSvc.MockTokenService
	validator   *mockSvc.MockAccountValidator
	publisher   *mockSvc.MockEventPublisher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockCredentialHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	validator := mockSvc.NewMockAccountValidator(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Validator:    validator,
		Publisher:    publisher,
		Logger:       logger,
	})

	return accountServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
		hasher:      hasher,
		tokenSvc:    tokenSvc,
		validator:   validator,
		publisher:   publisher,
	}
}

// newStoredAccount builds an account as the repository would return it.
func newStoredAccount(email string, digest, salt []byte) *entity.Account {
	account := &entity.Account{
		ID:    uuid.New(),
		Email: email,
	}
	account.SetCredential(digest, salt)

	return account
}
