package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adampos/tipstation/internal/pkg/models"
)

func newTestGateway(serverURL string) *SquareGateway {
	return NewSquareGateway(
		models.SquareConfig{
			BaseURL:     serverURL,
			AccessToken: "test-token",
			LocationID:  "LOC123",
			Version:     "2024-01-18",
			Timeout:     2 * time.Second,
		},
		models.PairingConfig{
			DeviceName:  "Tip Terminal",
			ProductType: "TERMINAL_API",
		},
	)
}

func TestCreateTerminalCheckout(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/terminals/checkouts", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"checkout":{"id":"CHK1","status":"PENDING"}}`))
	}))
	defer server.Close()

	gw := newTestGateway(server.URL)
	checkout := &models.TerminalCheckout{
		Amount:      525,
		Currency:    "USD",
		DeviceID:    "dev-1",
		Note:        "Tip",
		ReferenceID: "trans-abc",
	}

	result, err := gw.CreateTerminalCheckout(context.Background(), "trans-abc", checkout)
	require.NoError(t, err)
	assert.Equal(t, "CHK1", result.CheckoutID)
	assert.Equal(t, "trans-abc", result.IdempotencyKey)

	assert.Equal(t, "trans-abc", captured["idempotency_key"])
	body := captured["checkout"].(map[string]interface{})
	money := body["amount_money"].(map[string]interface{})
	assert.Equal(t, float64(525), money["amount"])
	assert.Equal(t, "USD", money["currency"])
	opts := body["device_options"].(map[string]interface{})
	assert.Equal(t, "dev-1", opts["device_id"])
	assert.Equal(t, "trans-abc", body["reference_id"])
}

func TestCreateTerminalCheckout_ProcessorError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":[{"code":"INVALID_VALUE"}]}`))
	}))
	defer server.Close()

	gw := newTestGateway(server.URL)
	_, err := gw.CreateTerminalCheckout(context.Background(), "trans-x", &models.TerminalCheckout{
		Amount: 100, Currency: "USD", DeviceID: "dev-1",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_VALUE")
}

func TestCreateDeviceCode(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/devices/codes", r.URL.Path)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"device_code":{"id":"DC1","code":"ABCDE","status":"UNPAIRED"}}`))
	}))
	defer server.Close()

	gw := newTestGateway(server.URL)
	dc, err := gw.CreateDeviceCode(context.Background(), "pair-xyz")
	require.NoError(t, err)
	assert.Equal(t, "ABCDE", dc.Code)
	assert.Equal(t, "DC1", dc.ID)

	assert.Equal(t, "pair-xyz", captured["idempotency_key"])
	body := captured["device_code"].(map[string]interface{})
	assert.Equal(t, "Tip Terminal", body["name"])
	assert.Equal(t, "TERMINAL_API", body["product_type"])
	assert.Equal(t, "LOC123", body["location_id"])
}

func TestListDeviceCodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/devices/codes", r.URL.Path)
		assert.Equal(t, "LOC123", r.URL.Query().Get("location_id"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"device_codes":[
			{"id":"DC1","code":"ABCDE","status":"UNPAIRED"},
			{"id":"DC2","code":"FGHIJ","status":"PAIRED","device_id":"dev-9"}
		]}`))
	}))
	defer server.Close()

	gw := newTestGateway(server.URL)
	codes, err := gw.ListDeviceCodes(context.Background())
	require.NoError(t, err)
	require.Len(t, codes, 2)
	assert.Equal(t, "PAIRED", codes[1].Status)
	assert.Equal(t, "dev-9", codes[1].DeviceID)
}
