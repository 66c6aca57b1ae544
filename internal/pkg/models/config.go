package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Callback CallbackConfig
	Square   SquareConfig
	JWT      JWTConfig
	Pairing  PairingConfig
	Checkout CheckoutConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains the UI-facing HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// CallbackConfig contains the inbound payment-notification listener configuration
type CallbackConfig struct {
	Port int
}

// SquareConfig contains Square API connection configuration
type SquareConfig struct {
	BaseURL     string
	AccessToken string
	LocationID  string
	Version     string
	Timeout     time.Duration
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// PairingConfig contains terminal pairing configuration
type PairingConfig struct {
	PasswordHash string
	DeviceName   string
	ProductType  string
	PollAttempts int
	PollInterval time.Duration
}

// CheckoutConfig contains transaction coordinator configuration
type CheckoutConfig struct {
	Currency   string
	Note       string
	Timeout    time.Duration // how long to wait for a completion notification
	AutoRetry  bool
	ResetDelay time.Duration // how long a completed checkout stays on display
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
