package models

import "time"

// CheckoutStatus is the lifecycle state of a terminal checkout attempt
type CheckoutStatus string

const (
	// CheckoutStatusPending means the checkout was submitted and is awaiting a completion notification
	CheckoutStatusPending CheckoutStatus = "PENDING"
	// CheckoutStatusCompleted means the processor reported the payment as completed
	CheckoutStatusCompleted CheckoutStatus = "COMPLETED"
	// CheckoutStatusCancelled means the attempt was superseded by a newer submission
	CheckoutStatusCancelled CheckoutStatus = "CANCELLED"
	// CheckoutStatusFailed means the checkout-creation call itself failed
	CheckoutStatusFailed CheckoutStatus = "FAILED"
)

// TerminalCheckout represents one charge attempt against the paired terminal
type TerminalCheckout struct {
	IdempotencyKey string         `json:"idempotency_key"`
	CheckoutID     string         `json:"checkout_id,omitempty"`
	Amount         int64          `json:"amount"` // currency minor units
	Currency       string         `json:"currency"`
	DeviceID       string         `json:"device_id"`
	Note           string         `json:"note,omitempty"`
	ReferenceID    string         `json:"reference_id"`
	Status         CheckoutStatus `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	CompletedAt    time.Time      `json:"completed_at,omitempty"`
}

// ChargeRequest is the UI-facing submit payload. AmountMinor carries a
// preset amount in minor units; Amount carries free-form operator input
// ("5", "5.25") and wins when both are set.
type ChargeRequest struct {
	AmountMinor *int64 `json:"amount_minor,omitempty"`
	Amount      string `json:"amount,omitempty"`
}

// CheckoutEventType classifies coordinator lifecycle events
type CheckoutEventType string

const (
	CheckoutEventSubmitted CheckoutEventType = "submitted"
	CheckoutEventCompleted CheckoutEventType = "completed"
	CheckoutEventFailed    CheckoutEventType = "failed"
	CheckoutEventRetried   CheckoutEventType = "retried"
	CheckoutEventReset     CheckoutEventType = "reset"
)

// CheckoutEvent is published to observers (the UI layer) on every
// coordinator state change
type CheckoutEvent struct {
	Type     CheckoutEventType `json:"type"`
	Checkout TerminalCheckout  `json:"checkout"`
}
