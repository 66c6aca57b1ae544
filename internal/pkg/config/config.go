package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/adampos/tipstation/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "tipstation")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Callback listener config
	configs.Callback.Port = GetEnvAsInt("CALLBACK_PORT", 8081)

	// Square config
	configs.Square.BaseURL = GetEnv("SQUARE_BASE_URL", "https://connect.squareup.com")
	configs.Square.AccessToken = GetEnv("SQUARE_ACCESS_TOKEN", "")
	configs.Square.LocationID = GetEnv("SQUARE_LOCATION_ID", "")
	configs.Square.Version = GetEnv("SQUARE_API_VERSION", "2024-08-21")
	configs.Square.Timeout = GetEnvAsDuration("SQUARE_TIMEOUT", 10*time.Second)

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "tipstation")

	// Pairing config
	configs.Pairing.PasswordHash = GetEnv("PAIRING_PASSWORD_HASH", "")
	configs.Pairing.DeviceName = GetEnv("PAIRING_DEVICE_NAME", "Tipstation Terminal")
	configs.Pairing.ProductType = GetEnv("PAIRING_PRODUCT_TYPE", "TERMINAL_API")
	configs.Pairing.PollAttempts = GetEnvAsInt("PAIRING_POLL_ATTEMPTS", 30)
	configs.Pairing.PollInterval = GetEnvAsDuration("PAIRING_POLL_INTERVAL", time.Second)

	// Checkout config
	configs.Checkout.Currency = GetEnv("CHECKOUT_CURRENCY", "USD")
	configs.Checkout.Note = GetEnv("CHECKOUT_NOTE", "Tip from Tipstation POS")
	configs.Checkout.Timeout = GetEnvAsDuration("CHECKOUT_TIMEOUT", 120*time.Second)
	configs.Checkout.AutoRetry = GetEnvAsBool("CHECKOUT_AUTO_RETRY", true)
	configs.Checkout.ResetDelay = GetEnvAsDuration("CHECKOUT_RESET_DELAY", 10*time.Second)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
