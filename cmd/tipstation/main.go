package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/adampos/tipstation/internal/pkg/config"
	"github.com/adampos/tipstation/internal/pkg/health"
	"github.com/adampos/tipstation/internal/pkg/logger"
	"github.com/adampos/tipstation/internal/pkg/middleware"
	"github.com/adampos/tipstation/internal/pkg/server"
	"github.com/adampos/tipstation/services/terminal/gateway"
	"github.com/adampos/tipstation/services/terminal/handler"
	httpHandler "github.com/adampos/tipstation/services/terminal/handler/http"
	"github.com/adampos/tipstation/services/terminal/repository"
	"github.com/adampos/tipstation/services/terminal/usecase"
)

func main() {
	appName := "tipstation"
	configs := config.InitConfig(".env")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize repository
	deviceRepo := repository.NewDeviceRepository()

	// Initialize Gateway
	squareGW := gateway.NewSquareGateway(configs.Square, configs.Pairing)

	// Initialize UseCases
	checkoutUC := usecase.NewCheckoutUC(squareGW, deviceRepo, configs)
	defer checkoutUC.Close()
	pairingUC := usecase.NewPairingUC(squareGW, deviceRepo, configs)

	// Handlers for HTTP
	authHandler := httpHandler.NewAuthHandler(pairingUC)
	pairingHandler := httpHandler.NewPairingHandler(pairingUC)
	checkoutHandler := httpHandler.NewCheckoutHandler(checkoutUC)
	webhookHandler := httpHandler.NewWebhookHandler(checkoutUC)

	Handler := handler.NewHandler(authHandler, pairingHandler, checkoutHandler, webhookHandler, configs)

	// UI-facing API router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	health.RegisterHealthEndpoints(e, appName)
	Handler.RegisterRoutes(e)

	// Payment-notification receiver runs on its own listener so the
	// processor callback URL never overlaps the operator surface
	callback := echo.New()
	callback.HideBanner = true
	callback.Use(middleware.RequestIDMiddleware())
	callback.Use(logger.ZapEchoMiddleware(zapLogger))
	Handler.RegisterCallbackRoutes(callback)

	srv := server.NewGracefulServer(zapLogger, 0)
	srv.AddListener("api", e, configs.Server.Port)
	srv.AddListener("callback", callback, configs.Callback.Port)

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server exited with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
