package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adampos/tipstation/internal/pkg/logger"
	"github.com/adampos/tipstation/internal/utils"
	"github.com/adampos/tipstation/services/terminal"
)

// PairingHandler handles terminal pairing endpoints
type PairingHandler struct {
	pairingUC terminal.PairingUC
}

// NewPairingHandler creates a new pairing handler
func NewPairingHandler(pairingUC terminal.PairingUC) *PairingHandler {
	return &PairingHandler{pairingUC: pairingUC}
}

// StartPairing requests a pairing code and starts the poll loop
func (h *PairingHandler) StartPairing(c echo.Context) error {
	session, err := h.pairingUC.StartPairing(c.Request().Context())
	if err != nil {
		if errors.Is(err, terminal.ErrProcessorRequest) {
			logger.Error("Pairing request rejected by processor", logger.Err(err))
			return utils.BadGatewayResponse(c, "Payment processor request failed")
		}
		logger.Error("Failed to start pairing", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to start pairing")
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Pairing started", session)
}

// GetSession returns the current pairing session
func (h *PairingHandler) GetSession(c echo.Context) error {
	session := h.pairingUC.Session()
	if session == nil {
		return utils.NotFoundResponse(c, "No pairing session")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pairing session", session)
}
