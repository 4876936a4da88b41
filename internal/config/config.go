package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
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
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds the legal night window, minutes from midnight. The
// window wraps midnight when End < Start.
type PayrollConfig struct {
	NightWindowStartMinute int
	NightWindowEndMinute   int
}

func Load() (*Config, error) {
	// .env is optional; environment variables win in deployment.
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
		Name:     getEnv("DB_NAME", "payroll-engine"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Night window configuration (defaults to 21:00-06:00)
	nightStart, err := strconv.Atoi(getEnv("NIGHT_WINDOW_START_MINUTE", "1260"))
	if err != nil {
		return nil, fmt.Errorf("invalid NIGHT_WINDOW_START_MINUTE: %w", err)
	}
	nightEnd, err := strconv.Atoi(getEnv("NIGHT_WINDOW_END_MINUTE", "360"))
	if err != nil {
		return nil, fmt.Errorf("invalid NIGHT_WINDOW_END_MINUTE: %w", err)
	}
	config.Payroll = PayrollConfig{
		NightWindowStartMinute: nightStart,
		NightWindowEndMinute:   nightEnd,
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
	if c.Payroll.NightWindowStartMinute < 0 || c.Payroll.NightWindowStartMinute >= 24*60 {
		return fmt.Errorf("NIGHT_WINDOW_START_MINUTE must be within a day")
	}
	if c.Payroll.NightWindowEndMinute < 0 || c.Payroll.NightWindowEndMinute >= 24*60 {
		return fmt.Errorf("NIGHT_WINDOW_END_MINUTE must be within a day")
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
