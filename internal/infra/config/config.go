package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPracticumEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultRetryPeriod       = 600 * time.Second
	DefaultRequestTimeout    = 30 * time.Second
)

// Required credential keys.
const (
	KeyPracticumToken = "PRACTICUM_TOKEN"
	KeyTelegramToken  = "TELEGRAM_TOKEN"
	KeyTelegramChatID = "TELEGRAM_CHAT_ID"
)

// ConfigurationError is the fatal startup condition: a required credential is
// missing or unusable.
type ConfigurationError struct {
	Missing []string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("required environment variables are missing: %s", strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("invalid configuration: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken    string
	TelegramToken     string
	TelegramChatID    int64
	PracticumEndpoint string
	TelegramAPIURL    string // empty means the telebot default
	RetryPeriod       time.Duration
	RequestTimeout    time.Duration
	LogLevel          string
	Environment       string
	LogFile           string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()
	return loadFrom(os.Getenv)
}

func loadFrom(getenv func(string) string) (*AppConfig, error) {
	cfg := &AppConfig{
		PracticumToken: strings.TrimSpace(getenv(KeyPracticumToken)),
		TelegramToken:  strings.TrimSpace(getenv(KeyTelegramToken)),
	}
	chatIDStr := strings.TrimSpace(getenv(KeyTelegramChatID))

	var missing []string
	if cfg.PracticumToken == "" {
		missing = append(missing, KeyPracticumToken)
	}
	if cfg.TelegramToken == "" {
		missing = append(missing, KeyTelegramToken)
	}
	if chatIDStr == "" {
		missing = append(missing, KeyTelegramChatID)
	}
	if len(missing) > 0 {
		return nil, &ConfigurationError{Missing: missing}
	}

	var err error
	cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, &ConfigurationError{Err: fmt.Errorf("invalid %s: %w", KeyTelegramChatID, err)}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.PracticumEndpoint = getenv("PRACTICUM_ENDPOINT")
	if cfg.PracticumEndpoint == "" {
		cfg.PracticumEndpoint = DefaultPracticumEndpoint
	}
	cfg.TelegramAPIURL = getenv("TELEGRAM_API_URL")

	cfg.RetryPeriod, err = durationOr(getenv("RETRY_PERIOD"), DefaultRetryPeriod)
	if err != nil {
		return nil, &ConfigurationError{Err: fmt.Errorf("invalid RETRY_PERIOD: %w", err)}
	}
	cfg.RequestTimeout, err = durationOr(getenv("REQUEST_TIMEOUT"), DefaultRequestTimeout)
	if err != nil {
		return nil, &ConfigurationError{Err: fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)}
	}

	cfg.LogLevel = strings.ToLower(getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.LogFile = getenv("LOG_FILE")

	return cfg, nil
}

// Validate checks that all three credentials are present.
func (c *AppConfig) Validate() error {
	var missing []string
	if c.PracticumToken == "" {
		missing = append(missing, KeyPracticumToken)
	}
	if c.TelegramToken == "" {
		missing = append(missing, KeyTelegramToken)
	}
	if c.TelegramChatID == 0 {
		missing = append(missing, KeyTelegramChatID)
	}
	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}

func durationOr(raw string, def time.Duration) (time.Duration, error) {
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", d)
	}
	return d, nil
}
