package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	attendancedomain "github.com/horizonte-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	HRAPI    HRAPIConfig
	JWT      JWTConfig
	App      AppConfig
	Engine   EngineConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// HRAPIConfig points at the upstream HR system that owns clock events and
// leave approvals.
type HRAPIConfig struct {
	BaseURL string
	APIKey  string
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
	Timezone string
}

// EngineConfig carries the reconciliation thresholds. Converted into an
// immutable attendance.Config before reaching the engine.
type EngineConfig struct {
	LateToleranceMinutes      int
	AbsenceThresholdMinutes   int
	ExitToleranceMinutes      int
	MidnightGraceMinutes      int
	MinBreakMinutes           int
	MaxEventsPerDay           int
	ForgiveUnjustifiedAbsence bool
}

func Load() (*Config, error) {
	// A missing .env file is fine in deployed environments; variables
	// arrive from the process environment there.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.HRAPI = HRAPIConfig{
		BaseURL: getEnv("HR_API_BASE_URL", ""),
		APIKey:  getEnv("HR_API_KEY", ""),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Timezone: getEnv("APP_TIMEZONE", "America/Mexico_City"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	config.Engine = EngineConfig{
		LateToleranceMinutes:      getEnvInt("ENGINE_LATE_TOLERANCE_MINUTES", 15),
		AbsenceThresholdMinutes:   getEnvInt("ENGINE_ABSENCE_THRESHOLD_MINUTES", 30),
		ExitToleranceMinutes:      getEnvInt("ENGINE_EXIT_TOLERANCE_MINUTES", 15),
		MidnightGraceMinutes:      getEnvInt("ENGINE_MIDNIGHT_GRACE_MINUTES", 59),
		MinBreakMinutes:           getEnvInt("ENGINE_MIN_BREAK_MINUTES", 5),
		MaxEventsPerDay:           getEnvInt("ENGINE_MAX_EVENTS_PER_DAY", 9),
		ForgiveUnjustifiedAbsence: getEnv("ENGINE_FORGIVE_UNJUSTIFIED_ABSENCE", "false") == "true",
	}

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
	if c.HRAPI.BaseURL == "" {
		return fmt.Errorf("HR_API_BASE_URL is required")
	}
	if c.HRAPI.APIKey == "" {
		return fmt.Errorf("HR_API_KEY is required")
	}
	if c.Engine.LateToleranceMinutes < 0 || c.Engine.AbsenceThresholdMinutes < c.Engine.LateToleranceMinutes {
		return fmt.Errorf("engine thresholds must satisfy 0 <= late tolerance <= absence threshold")
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

// EngineConfig resolves the application timezone and builds the immutable
// threshold value the engine components receive.
func (c *Config) EngineConfig() (attendancedomain.Config, error) {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return attendancedomain.Config{}, fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.App.Timezone, err)
	}
	return attendancedomain.Config{
		LateToleranceMinutes:      c.Engine.LateToleranceMinutes,
		AbsenceThresholdMinutes:   c.Engine.AbsenceThresholdMinutes,
		ExitToleranceMinutes:      c.Engine.ExitToleranceMinutes,
		MidnightGraceMinutes:      c.Engine.MidnightGraceMinutes,
		MinBreakMinutes:           c.Engine.MinBreakMinutes,
		MaxEventsPerDay:           c.Engine.MaxEventsPerDay,
		ForgiveUnjustifiedAbsence: c.Engine.ForgiveUnjustifiedAbsence,
		Location:                  loc,
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
