package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/adampos/tipstation/internal/pkg/middleware"
	"github.com/adampos/tipstation/internal/pkg/models"
	"github.com/adampos/tipstation/services/terminal/handler/http"
)

// Handler coordinates the HTTP handlers for the terminal service
type Handler struct {
	authHandler     *http.AuthHandler
	pairingHandler  *http.PairingHandler
	checkoutHandler *http.CheckoutHandler
	webhookHandler  *http.WebhookHandler
	cfg             *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	pairingHandler *http.PairingHandler,
	checkoutHandler *http.CheckoutHandler,
	webhookHandler *http.WebhookHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:     authHandler,
		pairingHandler:  pairingHandler,
		checkoutHandler: checkoutHandler,
		webhookHandler:  webhookHandler,
		cfg:             cfg,
	}
}

// RegisterRoutes registers the UI-facing API routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	authGroup := e.Group("/auth")
	authGroup.POST("/unlock", h.authHandler.Unlock)

	checkoutGroup := e.Group("/checkouts")
	checkoutGroup.POST("", h.checkoutHandler.Charge)
	checkoutGroup.GET("/current", h.checkoutHandler.GetCurrent)

	// Pairing routes require an unlocked operator token
	pairingGroup := e.Group("/pairing", middleware.JWTAuthMiddleware(h.cfg.JWT))
	pairingGroup.POST("", h.pairingHandler.StartPairing)
	pairingGroup.GET("", h.pairingHandler.GetSession)
}

// RegisterCallbackRoutes registers the payment-notification receiver routes
func (h *Handler) RegisterCallbackRoutes(e *echo.Echo) {
	e.POST("/webhooks/square", h.webhookHandler.HandlePaymentNotification)
}
