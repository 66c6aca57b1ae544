package models

// PaymentWebhookEvent is the inbound payment-status notification shape.
// Only payment.updated events with a COMPLETED status are acted upon; the
// reference id carries the idempotency key used at submission.
type PaymentWebhookEvent struct {
	Type string             `json:"type"`
	Data PaymentWebhookData `json:"data"`
}

type PaymentWebhookData struct {
	Object PaymentWebhookObject `json:"object"`
}

type PaymentWebhookObject struct {
	Payment PaymentWebhookPayment `json:"payment"`
}

type PaymentWebhookPayment struct {
	Status      string `json:"status"`
	ReferenceID string `json:"reference_id"`
}

// PaymentEventTypeUpdated is the only webhook event type the receiver acts on
const PaymentEventTypeUpdated = "payment.updated"

// PaymentStatusCompleted is the processor-side status that resolves a checkout
const PaymentStatusCompleted = "COMPLETED"
