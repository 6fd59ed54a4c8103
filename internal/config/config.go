package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	QR        QRConfig
	Reconcile ReconcileConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// QRConfig holds the shared secret and validity window for QR check-in
type QRConfig struct {
	Secret   string
	WindowMS int
}

// ReconcileConfig holds settings for the daily absence sweep
type ReconcileConfig struct {
	Hour    int // local hour of day the sweep runs at
	LogPath string
}

func Load() (*Config, error) {
	// Missing .env is fine when variables come from the environment
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "simpeg"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// QR check-in configuration
	qrWindow, err := strconv.Atoi(getEnv("QR_WINDOW_MS", "30000"))
	if err != nil {
		return nil, fmt.Errorf("invalid QR_WINDOW_MS: %w", err)
	}
	config.QR = QRConfig{
		Secret:   getEnv("QR_SECRET", ""),
		WindowMS: qrWindow,
	}

	// Absence reconciliation configuration
	reconcileHour, err := strconv.Atoi(getEnv("RECONCILE_HOUR", "21"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECONCILE_HOUR: %w", err)
	}
	config.Reconcile = ReconcileConfig{
		Hour:    reconcileHour,
		LogPath: getEnv("RECONCILE_LOG_PATH", "reconcile.log"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.QR.Secret == "" {
		return fmt.Errorf("QR_SECRET is required")
	}
	if c.Reconcile.Hour < 0 || c.Reconcile.Hour > 23 {
		return fmt.Errorf("RECONCILE_HOUR must be between 0 and 23")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
