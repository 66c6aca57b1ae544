package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/adampos/tipstation/internal/pkg/jwt"
	"github.com/adampos/tipstation/internal/pkg/logger"
	"github.com/adampos/tipstation/internal/pkg/models"
	"github.com/adampos/tipstation/services/terminal"
)

// Unlock verifies the operator password against the configured bcrypt hash
// and issues a short-lived token for the pairing endpoints.
func (u *PairingUC) Unlock(ctx context.Context, req *models.UnlockRequest) (*models.AuthResponse, error) {
	err := bcrypt.CompareHashAndPassword(
		[]byte(u.cfg.Pairing.PasswordHash),
		[]byte(req.Password),
	)
	if err != nil {
		logger.Warn("Operator unlock rejected")
		return nil, terminal.ErrUnauthenticated
	}

	token, expiresAt, err := jwtpkg.GenerateToken("operator", u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("Operator unlocked pairing")
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// StartPairing requests a device code from the processor and starts the
// background poll loop. Calling it again while a poll is running returns
// the running session instead of starting another.
func (u *PairingUC) StartPairing(ctx context.Context) (*models.PairingSession, error) {
	u.mu.Lock()
	// A session is in flight from the moment it is installed, before the
	// device-code call returns. Both states must block a second start or
	// two codes get issued and two polls race for the shared binding.
	if u.session != nil &&
		(u.session.Status == models.PairingStatusAwaitingCode ||
			u.session.Status == models.PairingStatusPolling) {
		result := *u.session
		u.mu.Unlock()
		return &result, nil
	}
	session := &models.PairingSession{
		Status:    models.PairingStatusAwaitingCode,
		StartedAt: time.Now(),
	}
	u.session = session
	u.mu.Unlock()

	key := "pair-" + uuid.New().String()
	deviceCode, err := u.squareGW.CreateDeviceCode(ctx, key)
	if err != nil {
		u.mu.Lock()
		session.Status = models.PairingStatusFailed
		u.mu.Unlock()
		logger.Error("Device code creation failed", logger.Err(err))
		return nil, fmt.Errorf("%w: %v", terminal.ErrProcessorRequest, err)
	}

	u.mu.Lock()
	session.PairingCode = deviceCode.Code
	session.Status = models.PairingStatusPolling
	result := *session
	u.mu.Unlock()

	logger.Info("Pairing code issued",
		logger.String("pairing_code", deviceCode.Code))

	go u.poll(session, deviceCode.Code)

	return &result, nil
}

// poll watches the device-code listing until the terminal enters the code
// or the attempt budget runs out.
func (u *PairingUC) poll(session *models.PairingSession, code string) {
	for attempt := 1; attempt <= u.cfg.Pairing.PollAttempts; attempt++ {
		time.Sleep(u.cfg.Pairing.PollInterval)

		u.mu.Lock()
		session.Attempts = attempt
		u.mu.Unlock()

		codes, err := u.squareGW.ListDeviceCodes(context.Background())
		if err != nil {
			logger.Warn("Device code listing failed",
				logger.Int("attempt", attempt),
				logger.Err(err))
			continue
		}

		for _, dc := range codes {
			if dc.Code != code || dc.Status != "PAIRED" || dc.DeviceID == "" {
				continue
			}

			u.deviceRepo.SetDeviceID(dc.DeviceID)

			u.mu.Lock()
			session.DeviceID = dc.DeviceID
			session.Status = models.PairingStatusPaired
			u.mu.Unlock()

			logger.Info("Terminal paired",
				logger.String("device_id", dc.DeviceID),
				logger.Int("attempts", attempt))
			return
		}
	}

	u.mu.Lock()
	session.Status = models.PairingStatusTimedOut
	u.mu.Unlock()

	logger.Warn("Pairing timed out",
		logger.String("pairing_code", code),
		logger.Int("attempts", u.cfg.Pairing.PollAttempts))
}

// Session returns a copy of the current pairing session, or nil if none
func (u *PairingUC) Session() *models.PairingSession {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.session == nil {
		return nil
	}
	result := *u.session
	return &result
}
