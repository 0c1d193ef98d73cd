package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort               = "8080"
	defaultAppEnv             = "development"
	defaultLogLevel           = "info"
	defaultAWSRegion          = "us-east-1"
	defaultInspectionsTable   = "inspections"
	defaultDiscountCodesTable = "discount_codes"
	defaultLedgerLockTTL      = "10s"
	defaultAutomationQueue    = "inspection_automation_triggers"
	defaultAutomationBuffer   = "256"
	defaultAutomationTimeout  = "10s"
	defaultJWTSecret          = "change-me-jwt-secret"
)

// Config holds the runtime configuration read from the environment.
// Values in a .env file are loaded by godotenv/autoload in main before Load runs.
type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	InspectionsTable   string
	DiscountCodesTable string

	MercadoPagoAccessToken   string
	MercadoPagoWebhookSecret string
	MercadoPagoTestPayer     string
	MercadoPagoTestPayerID   string
	PaymentGatewayMock       bool

	RedisAddr     string
	RedisPassword string
	LedgerLockTTL time.Duration

	RabbitMQURL              string
	AutomationQueue          string
	AutomationBuffer         int
	AutomationPublishTimeout time.Duration

	JWTSecret string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:     strings.TrimSpace(getEnv("PORT", defaultPort)),
		AppEnv:   strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", defaultAppEnv))),
		LogLevel: strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel))),

		AWSRegion:          strings.TrimSpace(getEnv("AWS_REGION", defaultAWSRegion)),
		AWSAccessKeyID:     strings.TrimSpace(getEnv("AWS_ACCESS_KEY_ID", "local")),
		AWSSecretAccessKey: strings.TrimSpace(getEnv("AWS_SECRET_ACCESS_KEY", "local")),
		DynamoDBEndpoint:   strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
		InspectionsTable:   strings.TrimSpace(getEnv("INSPECTIONS_TABLE", defaultInspectionsTable)),
		DiscountCodesTable: strings.TrimSpace(getEnv("DISCOUNT_CODES_TABLE", defaultDiscountCodesTable)),

		MercadoPagoAccessToken:   strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		MercadoPagoWebhookSecret: strings.TrimSpace(os.Getenv("MERCADOPAGO_WEBHOOK_SECRET")),
		MercadoPagoTestPayer:     strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
		MercadoPagoTestPayerID:   strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID")),
		PaymentGatewayMock:       parseBoolEnv("PAYMENT_GATEWAY_MOCK", "false") || parseBoolEnv("MERCADOPAGO_MOCK", "false"),

		RedisAddr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		RabbitMQURL:     strings.TrimSpace(os.Getenv("RABBITMQ_URL")),
		AutomationQueue: strings.TrimSpace(getEnv("AUTOMATION_QUEUE", defaultAutomationQueue)),

		JWTSecret: strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
	}

	var err error
	cfg.LedgerLockTTL, err = parseDurationEnv("LEDGER_LOCK_TTL", defaultLedgerLockTTL)
	if err != nil {
		return nil, err
	}

	cfg.AutomationPublishTimeout, err = parseDurationEnv("AUTOMATION_PUBLISH_TIMEOUT", defaultAutomationTimeout)
	if err != nil {
		return nil, err
	}
	cfg.AutomationBuffer, err = parseIntEnv("AUTOMATION_BUFFER", defaultAutomationBuffer)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MercadoPagoSandbox reports whether the access token is a Mercado Pago test token.
func (c *Config) MercadoPagoSandbox() bool {
	return strings.HasPrefix(c.MercadoPagoAccessToken, "TEST-")
}

// IsProduction reports whether APP_ENV names a production-like environment.
func (c *Config) IsProduction() bool {
	return isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if cfg.LedgerLockTTL <= 0 {
		return fmt.Errorf("LEDGER_LOCK_TTL must be > 0")
	}
	if cfg.AutomationBuffer <= 0 {
		return fmt.Errorf("AUTOMATION_BUFFER must be > 0")
	}
	if cfg.AutomationPublishTimeout <= 0 {
		return fmt.Errorf("AUTOMATION_PUBLISH_TIMEOUT must be > 0")
	}
	if isProdLike(cfg.AppEnv) {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in production JWT_SECRET must be set and not default")
		}
		if !cfg.PaymentGatewayMock && cfg.MercadoPagoAccessToken == "" {
			return fmt.Errorf("in production MERCADOPAGO_ACCESS_TOKEN must be set")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	switch value {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
