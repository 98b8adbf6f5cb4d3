package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"supplier_report/internal/logger"
)

type Config struct {
	// HTTP
	Port string

	// DynamoDB
	AWSRegion        string
	DynamoDBEndpoint string
	SuppliersTable   string
	DebtsTable       string
	PaymentsTable    string

	// Report
	ReportPageSize     int
	CashierPageSize    int
	ReportTimezone     string
	SessionWaitTimeout time.Duration
	ShareBaseURL       string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		Port:             getEnv("PORT", "8080"),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint: strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
		SuppliersTable:   getEnv("SUPPLIERS_TABLE", "suppliers"),
		DebtsTable:       getEnv("DEBTS_TABLE", "supplier_debts"),
		PaymentsTable:    getEnv("PAYMENTS_TABLE", "supplier_payments"),
		ReportTimezone:   getEnv("REPORT_TIMEZONE", "Local"),
		ShareBaseURL:     getEnv("SHARE_BASE_URL", "https://wa.me/"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:    getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:        getEnv("LOG_OUTPUT", "stdout"),
	}

	var err error
	if config.ReportPageSize, err = getEnvInt("REPORT_PAGE_SIZE", 10); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	if config.CashierPageSize, err = getEnvInt("CASHIER_PAGE_SIZE", 20); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	if config.SessionWaitTimeout, err = getEnvDuration("SESSION_WAIT_TIMEOUT", 5*time.Second); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.SuppliersTable == "" || c.DebtsTable == "" || c.PaymentsTable == "" {
		return fmt.Errorf("SUPPLIERS_TABLE, DEBTS_TABLE and PAYMENTS_TABLE are required")
	}
	if c.ReportPageSize <= 0 {
		return fmt.Errorf("REPORT_PAGE_SIZE must be positive")
	}
	if c.CashierPageSize <= 0 || c.CashierPageSize > 100 {
		return fmt.Errorf("CASHIER_PAGE_SIZE must be between 1 and 100")
	}
	if c.SessionWaitTimeout <= 0 {
		return fmt.Errorf("SESSION_WAIT_TIMEOUT must be positive")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves REPORT_TIMEZONE. Calendar days of the report are
// midnights in this location.
func (c *Config) Location() (*time.Location, error) {
	switch c.ReportTimezone {
	case "", "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.ReportTimezone)
	if err != nil {
		return nil, fmt.Errorf("REPORT_TIMEZONE %q: %w", c.ReportTimezone, err)
	}
	return loc, nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}
