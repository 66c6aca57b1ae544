package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/adampos/tipstation/internal/pkg/models"
	"github.com/adampos/tipstation/services/terminal"
	"github.com/adampos/tipstation/services/terminal/mocks"
)

func pairingTestConfig(t *testing.T) *models.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	require.NoError(t, err)

	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "tipstation-test",
		},
		Pairing: models.PairingConfig{
			PasswordHash: string(hash),
			DeviceName:   "Tip Terminal",
			ProductType:  "TERMINAL_API",
			PollAttempts: 5,
			PollInterval: 5 * time.Millisecond,
		},
	}
}

func TestUnlock_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewPairingUC(mocks.NewMockSquareGW(ctrl), mocks.NewMockDeviceRepo(ctrl), pairingTestConfig(t))

	resp, err := uc.Unlock(context.Background(), &models.UnlockRequest{Password: "letmein"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
}

func TestUnlock_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewPairingUC(mocks.NewMockSquareGW(ctrl), mocks.NewMockDeviceRepo(ctrl), pairingTestConfig(t))

	_, err := uc.Unlock(context.Background(), &models.UnlockRequest{Password: "wrong"})
	assert.ErrorIs(t, err, terminal.ErrUnauthenticated)
}

func TestStartPairing_PairsDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockSquareGW(ctrl)
	mockRepo := mocks.NewMockDeviceRepo(ctrl)

	mockGW.EXPECT().
		CreateDeviceCode(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string) (*models.DeviceCode, error) {
			assert.True(t, strings.HasPrefix(key, "pair-"))
			return &models.DeviceCode{ID: "DC1", Code: "ABCDE", Status: "UNPAIRED"}, nil
		})

	// Unpaired on the first poll, paired on the second
	unpaired := []*models.DeviceCode{{ID: "DC1", Code: "ABCDE", Status: "UNPAIRED"}}
	paired := []*models.DeviceCode{{ID: "DC1", Code: "ABCDE", Status: "PAIRED", DeviceID: "dev-9"}}
	gomock.InOrder(
		mockGW.EXPECT().ListDeviceCodes(gomock.Any()).Return(unpaired, nil),
		mockGW.EXPECT().ListDeviceCodes(gomock.Any()).Return(paired, nil),
	)
	mockRepo.EXPECT().SetDeviceID("dev-9")

	uc := NewPairingUC(mockGW, mockRepo, pairingTestConfig(t))

	session, err := uc.StartPairing(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ABCDE", session.PairingCode)
	assert.Equal(t, models.PairingStatusPolling, session.Status)

	assert.Eventually(t, func() bool {
		return uc.Session().Status == models.PairingStatusPaired
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, "dev-9", uc.Session().DeviceID)
}

func TestStartPairing_TimesOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockSquareGW(ctrl)
	mockRepo := mocks.NewMockDeviceRepo(ctrl)

	cfg := pairingTestConfig(t)
	cfg.Pairing.PollAttempts = 3

	mockGW.EXPECT().
		CreateDeviceCode(gomock.Any(), gomock.Any()).
		Return(&models.DeviceCode{ID: "DC1", Code: "ABCDE", Status: "UNPAIRED"}, nil)
	mockGW.EXPECT().
		ListDeviceCodes(gomock.Any()).
		Return([]*models.DeviceCode{{ID: "DC1", Code: "ABCDE", Status: "UNPAIRED"}}, nil).
		Times(3)

	uc := NewPairingUC(mockGW, mockRepo, cfg)

	_, err := uc.StartPairing(context.Background())
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return uc.Session().Status == models.PairingStatusTimedOut
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, 3, uc.Session().Attempts)
}

func TestStartPairing_IdempotentWhilePolling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockSquareGW(ctrl)
	mockRepo := mocks.NewMockDeviceRepo(ctrl)

	cfg := pairingTestConfig(t)
	cfg.Pairing.PollInterval = time.Hour // keep the poll loop parked

	mockGW.EXPECT().
		CreateDeviceCode(gomock.Any(), gomock.Any()).
		Return(&models.DeviceCode{ID: "DC1", Code: "ABCDE", Status: "UNPAIRED"}, nil)

	uc := NewPairingUC(mockGW, mockRepo, cfg)

	first, err := uc.StartPairing(context.Background())
	require.NoError(t, err)

	// Second call returns the running session without a new device code
	second, err := uc.StartPairing(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.PairingCode, second.PairingCode)
}

func TestStartPairing_SingleDeviceCodeWhileCreating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockSquareGW(ctrl)
	mockRepo := mocks.NewMockDeviceRepo(ctrl)

	cfg := pairingTestConfig(t)
	cfg.Pairing.PollInterval = time.Hour // keep the poll loop parked

	entered := make(chan struct{})
	release := make(chan struct{})
	mockGW.EXPECT().
		CreateDeviceCode(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string) (*models.DeviceCode, error) {
			close(entered)
			<-release
			return &models.DeviceCode{ID: "DC1", Code: "ABCDE", Status: "UNPAIRED"}, nil
		}).
		Times(1)

	uc := NewPairingUC(mockGW, mockRepo, cfg)

	firstDone := make(chan *models.PairingSession)
	go func() {
		session, err := uc.StartPairing(context.Background())
		assert.NoError(t, err)
		firstDone <- session
	}()

	// Second start arrives while the first device-code call is in flight;
	// it must join the running session, not issue another code
	<-entered
	second, err := uc.StartPairing(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.PairingStatusAwaitingCode, second.Status)

	close(release)
	first := <-firstDone
	assert.Equal(t, "ABCDE", first.PairingCode)
	assert.Equal(t, models.PairingStatusPolling, first.Status)
}

func TestStartPairing_ProcessorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockSquareGW(ctrl)
	mockRepo := mocks.NewMockDeviceRepo(ctrl)

	mockGW.EXPECT().
		CreateDeviceCode(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	uc := NewPairingUC(mockGW, mockRepo, pairingTestConfig(t))

	_, err := uc.StartPairing(context.Background())
	assert.ErrorIs(t, err, terminal.ErrProcessorRequest)
	assert.Equal(t, models.PairingStatusFailed, uc.Session().Status)
}

func TestSession_NilBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewPairingUC(mocks.NewMockSquareGW(ctrl), mocks.NewMockDeviceRepo(ctrl), pairingTestConfig(t))
	assert.Nil(t, uc.Session())
}
