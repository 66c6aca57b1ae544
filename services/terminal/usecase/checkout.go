package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adampos/tipstation/internal/pkg/logger"
	"github.com/adampos/tipstation/internal/pkg/models"
	"github.com/adampos/tipstation/internal/utils"
	"github.com/adampos/tipstation/services/terminal"
)

// Charge validates the requested amount and submits a new checkout to the
// paired terminal. A newer submission supersedes whatever is active.
func (u *CheckoutUC) Charge(ctx context.Context, req *models.ChargeRequest) (*models.TerminalCheckout, error) {
	amount, err := resolveAmount(req)
	if err != nil {
		return nil, err
	}

	deviceID := u.deviceRepo.GetDeviceID()
	if deviceID == "" {
		return nil, terminal.ErrDeviceNotPaired
	}

	return u.charge(ctx, amount, deviceID, "")
}

// resolveAmount accepts any non-negative amount, zero included. The
// processor is the authority on minimum charges, not this layer.
func resolveAmount(req *models.ChargeRequest) (int64, error) {
	if req.Amount != "" {
		amount, err := utils.ParseAmountMinor(req.Amount)
		if err != nil {
			return 0, terminal.ErrInvalidAmount
		}
		return amount, nil
	}
	if req.AmountMinor != nil && *req.AmountMinor >= 0 {
		return *req.AmountMinor, nil
	}
	return 0, terminal.ErrInvalidAmount
}

// charge submits one checkout attempt. A non-empty supersedes key marks a
// timeout retry: the attempt only proceeds if that key is still the active
// pending one, so a completion that lands first always wins.
func (u *CheckoutUC) charge(ctx context.Context, amount int64, deviceID, supersedes string) (*models.TerminalCheckout, error) {
	key := "trans-" + uuid.New().String()
	checkout := &models.TerminalCheckout{
		IdempotencyKey: key,
		Amount:         amount,
		Currency:       u.cfg.Checkout.Currency,
		DeviceID:       deviceID,
		Note:           u.cfg.Checkout.Note,
		ReferenceID:    key,
		Status:         models.CheckoutStatusPending,
		CreatedAt:      time.Now(),
	}

	u.mu.Lock()
	if supersedes != "" {
		if u.active == nil || u.active.IdempotencyKey != supersedes ||
			u.active.Status != models.CheckoutStatusPending {
			// The attempt we were retrying resolved in the meantime
			u.mu.Unlock()
			return nil, nil
		}
	}
	if u.active != nil && u.active.Status == models.CheckoutStatusPending {
		u.active.Status = models.CheckoutStatusCancelled
	}
	u.stopTimersLocked()
	u.active = checkout
	u.mu.Unlock()

	logger.Info("Submitting terminal checkout",
		logger.String("idempotency_key", key),
		logger.Int64("amount", amount),
		logger.String("device_id", deviceID),
		logger.Bool("retry", supersedes != ""))

	submitted, err := u.squareGW.CreateTerminalCheckout(ctx, key, checkout)

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.active == nil || u.active.IdempotencyKey != key {
		// Superseded while the request was in flight
		checkout.Status = models.CheckoutStatusCancelled
		return checkout, nil
	}

	if err != nil {
		u.active.Status = models.CheckoutStatusFailed
		u.publishLocked(models.CheckoutEventFailed)
		u.scheduleResetLocked(key)
		logger.Error("Terminal checkout submission failed",
			logger.String("idempotency_key", key),
			logger.Err(err))
		return nil, fmt.Errorf("%w: %v", terminal.ErrProcessorRequest, err)
	}

	u.active.CheckoutID = submitted.CheckoutID
	u.retryTimer = time.AfterFunc(u.cfg.Checkout.Timeout, func() {
		u.onTimeout(key)
	})

	if supersedes != "" {
		u.publishLocked(models.CheckoutEventRetried)
	} else {
		u.publishLocked(models.CheckoutEventSubmitted)
	}

	result := *u.active
	return &result, nil
}

// onTimeout fires when no completion notification arrived in time. With
// auto-retry on it resubmits the charge under a fresh key; otherwise the
// attempt stays pending for the operator to resolve. No cancellation call
// is made to the processor either way.
func (u *CheckoutUC) onTimeout(key string) {
	u.mu.Lock()
	if u.active == nil || u.active.IdempotencyKey != key ||
		u.active.Status != models.CheckoutStatusPending {
		u.mu.Unlock()
		return
	}

	if !u.cfg.Checkout.AutoRetry {
		u.mu.Unlock()
		logger.Warn("Terminal checkout timed out, waiting for manual retry",
			logger.String("idempotency_key", key))
		return
	}

	amount := u.active.Amount
	deviceID := u.active.DeviceID
	u.mu.Unlock()

	logger.Warn("Terminal checkout timed out, retrying",
		logger.String("idempotency_key", key))

	if _, err := u.charge(context.Background(), amount, deviceID, key); err != nil {
		logger.Error("Terminal checkout retry failed", logger.Err(err))
	}
}

// HandlePaymentUpdate resolves the active checkout when a matching
// completed-payment notification arrives. Notifications for superseded or
// unknown keys are ignored.
func (u *CheckoutUC) HandlePaymentUpdate(ctx context.Context, event *models.PaymentWebhookEvent) error {
	if event.Type != models.PaymentEventTypeUpdated {
		logger.Debug("Ignoring payment event", logger.String("type", event.Type))
		return nil
	}

	payment := event.Data.Object.Payment
	if payment.Status != models.PaymentStatusCompleted {
		logger.Debug("Ignoring non-completed payment update",
			logger.String("status", payment.Status),
			logger.String("reference_id", payment.ReferenceID))
		return nil
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.active == nil || u.active.IdempotencyKey != payment.ReferenceID {
		logger.Info("Ignoring payment update for inactive checkout",
			logger.String("reference_id", payment.ReferenceID))
		return nil
	}
	if u.active.Status != models.CheckoutStatusPending {
		return nil
	}

	u.active.Status = models.CheckoutStatusCompleted
	u.active.CompletedAt = time.Now()
	if u.retryTimer != nil {
		u.retryTimer.Stop()
		u.retryTimer = nil
	}
	u.publishLocked(models.CheckoutEventCompleted)
	u.scheduleResetLocked(u.active.IdempotencyKey)

	logger.Info("Terminal checkout completed",
		logger.String("idempotency_key", payment.ReferenceID),
		logger.Int64("amount", u.active.Amount))
	return nil
}

// scheduleResetLocked clears a resolved checkout from the display after the
// configured delay. Caller must hold the mutex.
func (u *CheckoutUC) scheduleResetLocked(key string) {
	if u.resetTimer != nil {
		u.resetTimer.Stop()
	}
	u.resetTimer = time.AfterFunc(u.cfg.Checkout.ResetDelay, func() {
		u.onReset(key)
	})
}

func (u *CheckoutUC) onReset(key string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.active == nil || u.active.IdempotencyKey != key {
		return
	}
	if u.active.Status == models.CheckoutStatusPending {
		return
	}

	u.publishLocked(models.CheckoutEventReset)
	u.active = nil
}

// Current returns a copy of the active checkout, or nil when idle
func (u *CheckoutUC) Current() *models.TerminalCheckout {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.active == nil {
		return nil
	}
	result := *u.active
	return &result
}

// Events exposes the checkout lifecycle event stream
func (u *CheckoutUC) Events() <-chan models.CheckoutEvent {
	return u.events
}

// Close cancels pending timers and closes the event stream
func (u *CheckoutUC) Close() {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.stopTimersLocked()
	if !u.closed {
		u.closed = true
		close(u.events)
	}
}

func (u *CheckoutUC) stopTimersLocked() {
	if u.retryTimer != nil {
		u.retryTimer.Stop()
		u.retryTimer = nil
	}
	if u.resetTimer != nil {
		u.resetTimer.Stop()
		u.resetTimer = nil
	}
}

// publishLocked emits a lifecycle event without blocking. Slow observers
// drop events rather than stall the coordinator. Caller must hold the mutex.
func (u *CheckoutUC) publishLocked(eventType models.CheckoutEventType) {
	if u.closed || u.active == nil {
		return
	}
	select {
	case u.events <- models.CheckoutEvent{Type: eventType, Checkout: *u.active}:
	default:
		logger.Warn("Dropping checkout event, buffer full",
			logger.String("event_type", string(eventType)))
	}
}
