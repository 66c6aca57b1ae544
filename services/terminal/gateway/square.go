package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/adampos/tipstation/internal/pkg/http"
	"github.com/adampos/tipstation/internal/pkg/models"
)

// SquareGateway talks to the Square Terminal API over HTTP
type SquareGateway struct {
	client     *http.BearerClient
	cfg        models.SquareConfig
	pairingCfg models.PairingConfig
}

// NewSquareGateway creates a Square Terminal API gateway
func NewSquareGateway(cfg models.SquareConfig, pairingCfg models.PairingConfig) *SquareGateway {
	return &SquareGateway{
		client:     http.NewBearerClient(cfg.BaseURL, cfg.AccessToken, cfg.Version, cfg.Timeout),
		cfg:        cfg,
		pairingCfg: pairingCfg,
	}
}

// NewSquareGatewayWithClient creates a gateway with an injected client
func NewSquareGatewayWithClient(client *http.BearerClient, cfg models.SquareConfig, pairingCfg models.PairingConfig) *SquareGateway {
	return &SquareGateway{client: client, cfg: cfg, pairingCfg: pairingCfg}
}

type moneyPayload struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type deviceOptionsPayload struct {
	DeviceID string `json:"device_id"`
}

type checkoutPayload struct {
	ID            string               `json:"id,omitempty"`
	AmountMoney   moneyPayload         `json:"amount_money"`
	DeviceOptions deviceOptionsPayload `json:"device_options"`
	Note          string               `json:"note,omitempty"`
	ReferenceID   string               `json:"reference_id,omitempty"`
	Status        string               `json:"status,omitempty"`
}

type createCheckoutRequest struct {
	IdempotencyKey string          `json:"idempotency_key"`
	Checkout       checkoutPayload `json:"checkout"`
}

type createCheckoutResponse struct {
	Checkout checkoutPayload `json:"checkout"`
}

// CreateTerminalCheckout pushes a checkout to the paired terminal
func (g *SquareGateway) CreateTerminalCheckout(ctx context.Context, idempotencyKey string, checkout *models.TerminalCheckout) (*models.TerminalCheckout, error) {
	reqBody := createCheckoutRequest{
		IdempotencyKey: idempotencyKey,
		Checkout: checkoutPayload{
			AmountMoney: moneyPayload{
				Amount:   checkout.Amount,
				Currency: checkout.Currency,
			},
			DeviceOptions: deviceOptionsPayload{DeviceID: checkout.DeviceID},
			Note:          checkout.Note,
			ReferenceID:   checkout.ReferenceID,
		},
	}

	var resp createCheckoutResponse
	if err := g.client.PostJSON(ctx, "/v2/terminals/checkouts", reqBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to create terminal checkout: %w", err)
	}

	result := *checkout
	result.IdempotencyKey = idempotencyKey
	result.CheckoutID = resp.Checkout.ID
	return &result, nil
}

type deviceCodePayload struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Code        string `json:"code,omitempty"`
	ProductType string `json:"product_type,omitempty"`
	LocationID  string `json:"location_id,omitempty"`
	Status      string `json:"status,omitempty"`
	DeviceID    string `json:"device_id,omitempty"`
}

type createDeviceCodeRequest struct {
	IdempotencyKey string            `json:"idempotency_key"`
	DeviceCode     deviceCodePayload `json:"device_code"`
}

type createDeviceCodeResponse struct {
	DeviceCode deviceCodePayload `json:"device_code"`
}

type listDeviceCodesResponse struct {
	DeviceCodes []deviceCodePayload `json:"device_codes"`
}

// CreateDeviceCode requests a new device pairing code
func (g *SquareGateway) CreateDeviceCode(ctx context.Context, idempotencyKey string) (*models.DeviceCode, error) {
	reqBody := createDeviceCodeRequest{
		IdempotencyKey: idempotencyKey,
		DeviceCode: deviceCodePayload{
			Name:        g.pairingCfg.DeviceName,
			ProductType: g.pairingCfg.ProductType,
			LocationID:  g.cfg.LocationID,
		},
	}

	var resp createDeviceCodeResponse
	if err := g.client.PostJSON(ctx, "/v2/devices/codes", reqBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to create device code: %w", err)
	}

	return toDeviceCode(resp.DeviceCode), nil
}

// ListDeviceCodes lists device codes for the configured location
func (g *SquareGateway) ListDeviceCodes(ctx context.Context) ([]*models.DeviceCode, error) {
	endpoint := "/v2/devices/codes?location_id=" + url.QueryEscape(g.cfg.LocationID)

	var resp listDeviceCodesResponse
	if err := g.client.GetJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to list device codes: %w", err)
	}

	codes := make([]*models.DeviceCode, 0, len(resp.DeviceCodes))
	for _, dc := range resp.DeviceCodes {
		codes = append(codes, toDeviceCode(dc))
	}
	return codes, nil
}

func toDeviceCode(dc deviceCodePayload) *models.DeviceCode {
	return &models.DeviceCode{
		ID:       dc.ID,
		Code:     dc.Code,
		Status:   dc.Status,
		DeviceID: dc.DeviceID,
	}
}
