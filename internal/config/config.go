package config

import (
	"fmt"
	"strings"
	"time"

	"theater_billing/internal/domain/pricing"

	"github.com/caarlos0/env/v9"
)

// Config is the runtime configuration of the billing service, read from the environment.
//
// A .env file is loaded beforehand by cmd/api (godotenv autoload).
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	AWSRegion              string        `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID         string        `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey     string        `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint       string        `env:"DYNAMODB_ENDPOINT"`
	DynamoDBStartupTimeout time.Duration `env:"DYNAMODB_STARTUP_TIMEOUT" envDefault:"30s"`
	StatementsTable        string        `env:"STATEMENTS_TABLE" envDefault:"statements"`
	PaymentsTable          string        `env:"PAYMENTS_TABLE" envDefault:"payments"`

	MercadoPagoAccessToken     string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	MercadoPagoTestPayerEmail  string `env:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	MercadoPagoTestPayerUserID string `env:"MERCADOPAGO_TEST_PAYER_USER_ID"`
	PaymentGatewayMock         string `env:"PAYMENT_GATEWAY_MOCK"`
	MercadoPagoMock            string `env:"MERCADOPAGO_MOCK"`

	Pricing pricing.Table `envPrefix:"PRICING_"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Pricing.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate pricing: %w", err)
	}
	if cfg.Port <= 0 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}

	return &cfg, nil
}

// PaymentsMocked reports whether the payment provider should be bypassed.
func (c *Config) PaymentsMocked() bool {
	return isTruthy(c.PaymentGatewayMock) || isTruthy(c.MercadoPagoMock)
}

// SandboxToken reports whether the MercadoPago token is a sandbox one.
func (c *Config) SandboxToken() bool {
	return strings.HasPrefix(strings.TrimSpace(c.MercadoPagoAccessToken), "TEST-")
}

func (c *Config) Production() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
