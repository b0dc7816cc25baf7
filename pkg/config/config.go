package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP      HTTP
	Logger    Logger
	Billing   Billing
	PayGate   PayGate
	Kafka     Kafka
	Reconcile Reconcile
}

type HTTP struct {
	Port          int    `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled bool   `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey        string `env:"HTTP_API_KEY" envDefault:"dev"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Billing struct {
	BaseURL string `env:"BILLING_SERVICE_URL"`
}

type PayGate struct {
	BaseURL string `env:"PAYGATE_SERVICE_URL"`
}

type Kafka struct {
	Enabled          bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers          []string `env:"KAFKA_BROKERS" envDefault:""`
	SettlementsTopic string   `env:"KAFKA_SETTLEMENTS_TOPIC" envDefault:"settlement.completed"`
}

type Reconcile struct {
	Interval       time.Duration `env:"RECONCILE_INTERVAL" envDefault:"1h"`
	CLPPerUSD      int64         `env:"RECONCILE_CLP_PER_USD" envDefault:"800"`
	StrictCurrency bool          `env:"RECONCILE_STRICT_CURRENCY" envDefault:"false"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
