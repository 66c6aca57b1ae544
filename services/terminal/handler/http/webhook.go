package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adampos/tipstation/internal/pkg/logger"
	"github.com/adampos/tipstation/internal/pkg/models"
	"github.com/adampos/tipstation/services/terminal"
)

// WebhookHandler receives payment notifications from the processor.
// It always answers 200 so the processor stops redelivering; anything
// that goes wrong is logged and swallowed.
type WebhookHandler struct {
	checkoutUC terminal.CheckoutUC
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(checkoutUC terminal.CheckoutUC) *WebhookHandler {
	return &WebhookHandler{checkoutUC: checkoutUC}
}

// HandlePaymentNotification processes an inbound payment webhook
func (h *WebhookHandler) HandlePaymentNotification(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		logger.Warn("Failed to read webhook body", logger.Err(err))
		return c.NoContent(http.StatusOK)
	}

	var event models.PaymentWebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		logger.Warn("Malformed webhook payload", logger.Err(err))
		return c.NoContent(http.StatusOK)
	}

	if err := h.checkoutUC.HandlePaymentUpdate(c.Request().Context(), &event); err != nil {
		logger.Error("Failed to apply payment update", logger.Err(err))
	}

	return c.NoContent(http.StatusOK)
}
