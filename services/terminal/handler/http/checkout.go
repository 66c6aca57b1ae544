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

// CheckoutHandler handles checkout submission and status endpoints
type CheckoutHandler struct {
	checkoutUC terminal.CheckoutUC
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutUC terminal.CheckoutUC) *CheckoutHandler {
	return &CheckoutHandler{checkoutUC: checkoutUC}
}

// Charge submits a new checkout to the paired terminal
func (h *CheckoutHandler) Charge(c echo.Context) error {
	var req models.ChargeRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid charge payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	checkout, err := h.checkoutUC.Charge(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, terminal.ErrInvalidAmount):
			return utils.BadRequestResponse(c, "Amount must be a non-negative dollar value")
		case errors.Is(err, terminal.ErrDeviceNotPaired):
			return utils.ConflictResponse(c, "No terminal device is paired")
		case errors.Is(err, terminal.ErrProcessorRequest):
			logger.Error("Charge rejected by processor", logger.Err(err))
			return utils.BadGatewayResponse(c, "Payment processor request failed")
		default:
			logger.Error("Charge failed", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to submit charge")
		}
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Checkout submitted", checkout)
}

// GetCurrent returns the active checkout, if any
func (h *CheckoutHandler) GetCurrent(c echo.Context) error {
	checkout := h.checkoutUC.Current()
	if checkout == nil {
		return utils.NotFoundResponse(c, "No active checkout")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Active checkout", checkout)
}
