package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"authcore/internal/delivery/http/response"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/usecase"

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

// CheckCredentialsOutput is the body returned by CheckCredentials.
type CheckCredentialsOutput struct {
	Valid bool `json:"valid"`
}

// CheckCredentials verifies a password for the user selected by id or username.
func (h *AccountHandler) CheckCredentials(c echo.Context) error {
	var input usecase.CheckPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid credential check input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidArgument.ErrorCode(), "Either id or username must be supplied")
	}

	valid, err := h.uc.CheckPassword(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, CheckCredentialsOutput{Valid: valid}, "")
}

// MembershipOutput is the body returned by GetMembership.
type MembershipOutput struct {
	Member bool `json:"member"`
}

// GetMembership reports whether the user in the path belongs to the named group.
func (h *AccountHandler) GetMembership(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "User id must be a positive integer")
	}

	member, err := h.uc.InGroup(c.Request().Context(), userID, c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MembershipOutput{Member: member}, "")
}
