package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/adampos/tipstation/internal/pkg/logger"
)

func testLogger(t *testing.T) *logger.ZapLogger {
	zl, err := logger.NewZapLogger(logger.ZapConfig{Level: "error"})
	assert.NoError(t, err)
	return zl
}

func TestGracefulServerShutdown(t *testing.T) {
	srv := NewGracefulServer(testLogger(t), 2*time.Second)
	srv.AddListener("api", echo.New(), 0)
	srv.AddListener("callback", echo.New(), 0)

	// Listeners were never started, shutdown should still succeed
	err := srv.Shutdown()
	assert.NoError(t, err)
}

func TestShutdownManager(t *testing.T) {
	sm := NewShutdownManager(testLogger(t))

	var order []int
	sm.Register(func(ctx context.Context) error {
		order = append(order, 1)
		return nil
	})
	sm.Register(func(ctx context.Context) error {
		order = append(order, 2)
		return errors.New("cleanup failed")
	})
	sm.Register(func(ctx context.Context) error {
		order = append(order, 3)
		return nil
	})

	err := sm.Shutdown(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, order, "all components run even if one fails")
}
