package usecase

import (
	"sync"
	"time"

	"github.com/adampos/tipstation/internal/pkg/models"
	"github.com/adampos/tipstation/services/terminal"
)

const eventBufferSize = 16

// CheckoutUC coordinates the terminal checkout lifecycle: submission,
// completion via payment notifications, timeout retry and display reset.
type CheckoutUC struct {
	squareGW   terminal.SquareGW
	deviceRepo terminal.DeviceRepo
	cfg        *models.Config

	mu         sync.Mutex
	active     *models.TerminalCheckout
	retryTimer *time.Timer
	resetTimer *time.Timer
	events     chan models.CheckoutEvent
	closed     bool
}

// NewCheckoutUC creates a new checkout coordinator instance
func NewCheckoutUC(
	squareGW terminal.SquareGW,
	deviceRepo terminal.DeviceRepo,
	cfg *models.Config,
) *CheckoutUC {
	return &CheckoutUC{
		squareGW:   squareGW,
		deviceRepo: deviceRepo,
		cfg:        cfg,
		events:     make(chan models.CheckoutEvent, eventBufferSize),
	}
}

// PairingUC drives the terminal pairing flow: operator unlock, device-code
// creation and the pairing poll loop.
type PairingUC struct {
	squareGW   terminal.SquareGW
	deviceRepo terminal.DeviceRepo
	cfg        *models.Config

	mu      sync.Mutex
	session *models.PairingSession
}

// NewPairingUC creates a new pairing usecase instance
func NewPairingUC(
	squareGW terminal.SquareGW,
	deviceRepo terminal.DeviceRepo,
	cfg *models.Config,
) *PairingUC {
	return &PairingUC{
		squareGW:   squareGW,
		deviceRepo: deviceRepo,
		cfg:        cfg,
	}
}
