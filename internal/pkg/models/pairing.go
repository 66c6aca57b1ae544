package models

import "time"

// PairingStatus is the lifecycle state of a terminal pairing session
type PairingStatus string

const (
	// PairingStatusAwaitingCode means no device-code exchange has happened yet
	PairingStatusAwaitingCode PairingStatus = "AWAITING_CODE"
	// PairingStatusPolling means a pairing code was issued and the poll loop is running
	PairingStatusPolling PairingStatus = "POLLING"
	// PairingStatusPaired means the terminal entered the code and a device id was resolved
	PairingStatusPaired PairingStatus = "PAIRED"
	// PairingStatusTimedOut means the poll budget was exhausted without a match
	PairingStatusTimedOut PairingStatus = "TIMED_OUT"
	// PairingStatusFailed means the device-code creation call failed
	PairingStatusFailed PairingStatus = "FAILED"
)

// PairingSession tracks one attempt to bind a physical terminal
type PairingSession struct {
	PairingCode string        `json:"pairing_code,omitempty"`
	DeviceID    string        `json:"device_id,omitempty"`
	Status      PairingStatus `json:"status"`
	Attempts    int           `json:"attempts"`
	StartedAt   time.Time     `json:"started_at,omitempty"`
}

// DeviceCode is one entry from the processor's device-code listing
type DeviceCode struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Status   string `json:"status"`
	DeviceID string `json:"device_id,omitempty"`
}

// UnlockRequest carries the operator password for the pairing gate
type UnlockRequest struct {
	Password string `json:"password"`
}

// AuthResponse is returned after a successful unlock
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
