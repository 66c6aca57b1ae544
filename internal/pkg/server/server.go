package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adampos/tipstation/internal/pkg/logger"
)

// Listener is one HTTP listener managed by the graceful server. The
// application runs two: the UI-facing API and the payment-callback receiver.
type Listener struct {
	Name string
	Echo *echo.Echo
	Port int
}

// GracefulServer runs multiple Echo listeners with graceful shutdown
type GracefulServer struct {
	listeners       []Listener
	logger          *logger.ZapLogger
	shutdownTimeout time.Duration
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(zapLogger *logger.ZapLogger, shutdownTimeout time.Duration) *GracefulServer {
	if shutdownTimeout == 0 {
		shutdownTimeout = 30 * time.Second
	}
	return &GracefulServer{
		logger:          zapLogger,
		shutdownTimeout: shutdownTimeout,
	}
}

// AddListener registers an Echo instance to be served on the given port
func (s *GracefulServer) AddListener(name string, e *echo.Echo, port int) {
	s.listeners = append(s.listeners, Listener{Name: name, Echo: e, Port: port})
}

// Start starts all listeners and blocks until a shutdown signal arrives
func (s *GracefulServer) Start() error {
	for _, l := range s.listeners {
		l := l
		go func() {
			addr := fmt.Sprintf(":%d", l.Port)
			s.logger.Info("Starting HTTP server",
				logger.String("listener", l.Name),
				logger.String("address", addr))

			if err := l.Echo.Start(addr); err != nil && err != http.ErrServerClosed {
				s.logger.Fatal("Failed to start server",
					logger.String("listener", l.Name),
					logger.Err(err))
			}
		}()
	}

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	// Kill signal sent from terminal (Ctrl+C)
	// SIGTERM signal sent from Kubernetes or Docker
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Block until signal is received
	sig := <-quit
	s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	return s.Shutdown()
}

// Shutdown gracefully shuts down all listeners
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	var firstErr error
	for _, l := range s.listeners {
		if err := l.Echo.Shutdown(ctx); err != nil {
			s.logger.Error("Listener forced to shutdown",
				logger.String("listener", l.Name),
				logger.Err(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if firstErr == nil {
		s.logger.Info("Server shutdown completed")
	}
	return firstErr
}

// ShutdownManager provides a way to register cleanup functions
type ShutdownManager struct {
	logger    *logger.ZapLogger
	functions []func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{
		logger:    zapLogger,
		functions: make([]func(context.Context) error, 0),
	}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(fn func(context.Context) error) {
	sm.functions = append(sm.functions, fn)
}

// Shutdown executes all registered cleanup functions
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.logger.Info("Starting graceful shutdown of components",
		logger.Int("components", len(sm.functions)))

	for i, fn := range sm.functions {
		if err := fn(ctx); err != nil {
			sm.logger.Error("Error during component shutdown",
				logger.Int("component", i),
				logger.Err(err))
			// Continue with other components even if one fails
		}
	}

	sm.logger.Info("All components shutdown completed")
	return nil
}
