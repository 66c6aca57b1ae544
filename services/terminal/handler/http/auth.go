package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adampos/tipstation/internal/pkg/logger"
	"github.com/adampos/tipstation/internal/pkg/models"
	"github.com/adampos/tipstation/internal/utils"
	"github.com/adampos/tipstation/services/terminal"
)

// AuthHandler handles the operator unlock endpoint
type AuthHandler struct {
	pairingUC terminal.PairingUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(pairingUC terminal.PairingUC) *AuthHandler {
	return &AuthHandler{pairingUC: pairingUC}
}

// Unlock verifies the operator password and returns a pairing token
func (h *AuthHandler) Unlock(c echo.Context) error {
	var req models.UnlockRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid unlock payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.pairingUC.Unlock(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, terminal.ErrUnauthenticated) {
			return utils.UnauthorizedResponse(c, "Invalid password")
		}
		logger.Error("Unlock failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to unlock")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Unlocked", resp)
}
