// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"accountd/internal/delivery/http/response"
	"accountd/internal/domain/entity"
	"accountd/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// --- Request DTOs ---

type registerRequest struct {
	Email      string `json:"email" validate:"required"`
	Credential string `json:"credential" validate:"required"`
}

type loginRequest struct {
	Email      string `json:"email" validate:"required"`
	Credential string `json:"credential" validate:"required"`
}

type changeCredentialRequest struct {
	OldCredential string `json:"old_credential" validate:"required"`
	NewCredential string `json:"new_credential" validate:"required"`
}

type updateProfileRequest struct {
	Email      string `json:"email" validate:"required"`
	IsDelegate bool   `json:"is_delegate"`
	IsOwner    bool   `json:"is_owner"`
}

// --- Response DTO ---

// accountResponse is the outward shape of an account. Credential material
// never appears here.
type accountResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	IsDelegate bool      `json:"is_delegate"`
	IsOwner    bool      `json:"is_owner"`
	Token      string    `json:"token,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toAccountResponse(account *entity.Account) *accountResponse {
	if account == nil {
		return nil
	}

	return &accountResponse{
		ID:         account.ID.String(),
		Email:      account.Email,
		IsDelegate: account.IsDelegate,
		IsOwner:    account.IsOwner,
		Token:      account.IssuedToken,
		CreatedAt:  account.CreatedAt,
		UpdatedAt:  account.UpdatedAt,
	}
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing required fields")
	}

	output, err := h.uc.CreateAccount(c.Request().Context(), &usecase.CreateAccountInput{
		Email:      req.Email,
		Credential: req.Credential,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountResponse(output.Account), "Account registered successfully")
}

// Login handles the authentication request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing required fields")
	}

	output, err := h.uc.Authenticate(c.Request().Context(), &usecase.AuthenticateInput{
		Email:      req.Email,
		Credential: req.Credential,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(output.Account), "Login successful")
}

// GetAccount handles fetching a single account by ID.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	id, err := parseAccountID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	output, err := h.uc.GetAccount(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(output.Account), "Account retrieved successfully")
}

// ChangeCredential handles rotating an account's credential.
func (h *AccountHandler) ChangeCredential(c echo.Context) error {
	id, err := parseAccountID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	var req changeCredentialRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid credential change input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing required fields")
	}

	output, err := h.uc.ChangeCredential(c.Request().Context(), &usecase.ChangeCredentialInput{
		ID:            id,
		OldCredential: req.OldCredential,
		NewCredential: req.NewCredential,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(output.Account), "Credential changed successfully")
}

// UpdateProfile handles updating an account's email and role flags.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	id, err := parseAccountID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing required fields")
	}

	output, err := h.uc.UpdateProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		ID:         id,
		Email:      req.Email,
		IsDelegate: req.IsDelegate,
		IsOwner:    req.IsOwner,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(output.Account), "Profile updated successfully")
}

// DeleteAccount handles removing an account.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	id, err := parseAccountID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func parseAccountID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
