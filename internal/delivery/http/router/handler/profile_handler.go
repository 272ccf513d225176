package handler

import (
	"log/slog"
	"net/http"

	"authcore/internal/delivery/http/response"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler serves the caller's profile record.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile returns the profile of the identity attached by the auth middleware.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	record, err := h.uc.GetProfile(c.Request().Context(), nil)
	if err != nil {
		return errors.WithStack(err)
	}
	if record == nil {
		return response.NotFound(c, domainerrors.ErrNoProfile.ErrorCode(), domainerrors.ErrNoProfile.Message())
	}

	return response.Success(c, http.StatusOK, record, "")
}
