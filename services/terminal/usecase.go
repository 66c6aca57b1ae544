package terminal

import (
	"context"

	"github.com/adampos/tipstation/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/adampos/tipstation/services/terminal CheckoutUC,PairingUC

// CheckoutUC represents the checkout coordinator interface
type CheckoutUC interface {
	// Charge submits a new terminal checkout, superseding any active one
	Charge(ctx context.Context, req *models.ChargeRequest) (*models.TerminalCheckout, error)

	// HandlePaymentUpdate applies a payment webhook event to the active checkout
	HandlePaymentUpdate(ctx context.Context, event *models.PaymentWebhookEvent) error

	// Current returns the active checkout, or nil when the terminal is idle
	Current() *models.TerminalCheckout

	// Events exposes the checkout lifecycle event stream
	Events() <-chan models.CheckoutEvent

	// Close cancels pending timers and closes the event stream
	Close()
}

// PairingUC represents the device pairing interface
type PairingUC interface {
	// Unlock verifies the operator password and issues a pairing token
	Unlock(ctx context.Context, req *models.UnlockRequest) (*models.AuthResponse, error)

	// StartPairing requests a device code and begins polling for pairing
	StartPairing(ctx context.Context) (*models.PairingSession, error)

	// Session returns the current pairing session, or nil if none was started
	Session() *models.PairingSession
}
