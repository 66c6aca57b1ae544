package terminal

import (
	"context"

	"github.com/adampos/tipstation/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/adampos/tipstation/services/terminal SquareGW

// SquareGW defines the Square Terminal API gateway interface
type SquareGW interface {
	// CreateTerminalCheckout pushes a checkout to the paired terminal
	CreateTerminalCheckout(ctx context.Context, idempotencyKey string, checkout *models.TerminalCheckout) (*models.TerminalCheckout, error)

	// CreateDeviceCode requests a new device pairing code
	CreateDeviceCode(ctx context.Context, idempotencyKey string) (*models.DeviceCode, error)

	// ListDeviceCodes lists device codes for the configured location
	ListDeviceCodes(ctx context.Context) ([]*models.DeviceCode, error)
}
