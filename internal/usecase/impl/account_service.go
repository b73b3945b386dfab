// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "accountd/internal/delivery/context"
	"accountd/internal/domain/entity"
	domainerrors "accountd/internal/domain/errors"
	"accountd/internal/domain/repository"
	"accountd/internal/domain/service"
	"accountd/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface. It enforces every
// business invariant before touching storage: validation order is fixed so
// error outcomes are deterministic for a given bad input combination.
type accountService struct {
	accountRepo  repository.AccountRepository
	hasher       service.CredentialHasher
	tokenService service.TokenService
	validator    service.AccountValidator
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.CredentialHasher
	TokenService service.TokenService
	Validator    service.AccountValidator
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all
// dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		validator:    params.Validator,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to
// the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAccount registers a new account. Validation order is fixed:
// email uniqueness, then email syntax, then credential strength.
func (srv *accountService) CreateAccount(ctx context.Context, input *usecase.CreateAccountInput) (*usecase.AccountOutput, error) {
	srv.log(ctx).Info("Starting account creation", slog.String("email", input.Email))

	_, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Account creation rejected, email taken", slog.String("email", input.Email))

		return nil, domainerrors.ErrEmailAlreadyExists.WrapMessage("email already registered")
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check email uniqueness")
	}

	if !srv.validator.IsValidEmail(input.Email) {
		return nil, domainerrors.ErrInvalidEmail.WrapMessage("email failed syntax validation")
	}

	if !srv.validator.IsValidCredential(input.Credential) {
		return nil, domainerrors.ErrInvalidCredential.WrapMessage("credential does not meet the strength policy")
	}

	salt, err := srv.hasher.CreateSalt()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create salt")
	}

	account := &entity.Account{
		ID:    uuid.New(),
		Email: input.Email,
	}
	account.SetCredential(srv.hasher.Hash(input.Credential, salt), salt)

	if err := srv.accountRepo.Insert(ctx, account); err != nil {
		// The repository translates a unique-constraint violation on email
		// into ErrEmailAlreadyExists; the pre-check above is only a fast path.
		srv.log(ctx).Error("Failed to insert account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to insert account")
	}

	srv.publishChanged(ctx, account)

	srv.log(ctx).Debug("Account created", slog.Any("accountID", account.ID))

	return &usecase.AccountOutput{Account: account.Sanitized()}, nil
}

// Authenticate verifies a credential against the stored digest and, on
// success, attaches a freshly issued identity token to the in-memory result.
func (srv *accountService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AccountOutput, error) {
	srv.log(ctx).Debug("Starting authentication", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Authentication failed, unknown email", slog.String("email", input.Email))

			return nil, domainerrors.ErrEmailNotFound.WrapMessage("authentication failed")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !srv.hasher.Verify(input.Credential, account.CredentialSalt, account.CredentialDigest) {
		srv.log(ctx).Warn("Authentication failed, credential mismatch", slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrIncorrectCredential.WrapMessage("authentication failed")
	}

	token, err := srv.tokenService.Issue(account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	out := account.Sanitized()
	out.IssuedToken = token

	srv.log(ctx).Debug("Authentication succeeded", slog.Any("accountID", account.ID))

	return &usecase.AccountOutput{Account: out}, nil
}

// GetAccount returns the sanitized account for the given ID.
func (srv *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*usecase.AccountOutput, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return &usecase.AccountOutput{Account: account.Sanitized()}, nil
}

// ChangeCredential rotates the credential after verifying the old one. The
// old-credential check and the new-credential strength check are independent:
// a correct old credential with a weak replacement leaves the record unchanged.
func (srv *accountService) ChangeCredential(ctx context.Context, input *usecase.ChangeCredentialInput) (*usecase.AccountOutput, error) {
	srv.log(ctx).Info("Starting credential change", slog.Any("accountID", input.ID))

	account, err := srv.accountRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("credential change failed")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	if !srv.hasher.Verify(input.OldCredential, account.CredentialSalt, account.CredentialDigest) {
		srv.log(ctx).Warn("Credential change rejected, old credential mismatch", slog.Any("accountID", input.ID))

		return nil, domainerrors.ErrIncorrectCredential.WrapMessage("old credential is incorrect")
	}

	if !srv.validator.IsValidCredential(input.NewCredential) {
		return nil, domainerrors.ErrInvalidCredential.WrapMessage("new credential does not meet the strength policy")
	}

	salt, err := srv.hasher.CreateSalt()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create salt")
	}
	account.SetCredential(srv.hasher.Hash(input.NewCredential, salt), salt)

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		srv.log(ctx).Error("Failed to update credential", slog.Any("accountID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update account credential")
	}

	srv.log(ctx).Debug("Credential changed", slog.Any("accountID", input.ID))

	return &usecase.AccountOutput{Account: account.Sanitized()}, nil
}

// UpdateProfile applies email and role-flag changes. Moving to an email that
// a different account already owns is a conflict; updating to the account's
// own current email is not.
func (srv *accountService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*usecase.AccountOutput, error) {
	srv.log(ctx).Info("Starting profile update", slog.Any("accountID", input.ID))

	if !srv.validator.IsValidEmail(input.Email) {
		return nil, domainerrors.ErrInvalidEmail.WrapMessage("email failed syntax validation")
	}

	account, err := srv.accountRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("profile update failed")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	conflicting, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check email uniqueness")
	}
	if conflicting != nil && conflicting.ID != account.ID {
		srv.log(ctx).Warn("Profile update rejected, email taken",
			slog.Any("accountID", input.ID), slog.String("email", input.Email))

		return nil, domainerrors.ErrEmailAlreadyExists.WrapMessage("email already registered to another account")
	}

	account.Email = input.Email
	account.IsDelegate = input.IsDelegate
	account.IsOwner = input.IsOwner

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("accountID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update account profile")
	}

	srv.publishChanged(ctx, account)

	srv.log(ctx).Debug("Profile updated", slog.Any("accountID", input.ID))

	return &usecase.AccountOutput{Account: account.Sanitized()}, nil
}

// DeleteAccount removes the record and announces the deletion.
func (srv *accountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Starting account deletion", slog.Any("accountID", id))

	if _, err := srv.accountRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound.WrapMessage("account deletion failed")
		}

		return errors.Wrap(err, "failed to find account by id")
	}

	if err := srv.accountRepo.Remove(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to remove account", slog.Any("accountID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to remove account")
	}

	srv.publishDeleted(ctx, id)

	srv.log(ctx).Debug("Account deleted", slog.Any("accountID", id))

	return nil
}

// publishChanged announces a created/updated account. Publication happens
// after the storage write commits and is best-effort: a failure is logged and
// swallowed, never surfaced to the caller.
func (srv *accountService) publishChanged(ctx context.Context, account *entity.Account) {
	event := &service.AccountChangedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		ID:        account.ID.String(),
		Email:     account.Email,
	}

	if err := srv.publisher.PublishAccountChanged(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish account-changed event",
			slog.Any("accountID", account.ID), slog.Any("error", err))
	}
}

func (srv *accountService) publishDeleted(ctx context.Context, id uuid.UUID) {
	event := &service.AccountDeletedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		ID:        id.String(),
	}

	if err := srv.publisher.PublishAccountDeleted(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish account-deleted event",
			slog.Any("accountID", id), slog.Any("error", err))
	}
}
