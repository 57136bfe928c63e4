package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"freight/internal/adapters/out/postgres"
	"freight/internal/core/domain/model/invoice"
	"freight/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	BrokerNone     = "none"
	BrokerKafka    = "kafka"
	BrokerRabbitMQ = "rabbitmq"
)

type Config struct {
	HTTPPort string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	SQLitePath string

	EventBroker   string
	KafkaBrokers  []string
	KafkaTopic    string
	RabbitMQURL   string
	RabbitMQQueue string

	OutboxSchedule  string
	OutboxBatchSize int

	DefaultTaxRate  decimal.Decimal
	InvoiceIssuer   string
	InvoiceCurrency string
}

// LoadConfig reads the environment. A .env file in the working directory is
// loaded first when present; variables already set win over it.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	batchSize, err := strconv.Atoi(envOr("OUTBOX_BATCH_SIZE", "100"))
	if err != nil {
		return Config{}, fmt.Errorf("OUTBOX_BATCH_SIZE: %w", err)
	}
	taxRate, err := decimal.NewFromString(envOr("DEFAULT_TAX_RATE", invoice.DefaultTaxRate.String()))
	if err != nil {
		return Config{}, fmt.Errorf("DEFAULT_TAX_RATE: %w", err)
	}

	config := Config{
		HTTPPort:        envOr("HTTP_PORT", "8080"),
		DBDriver:        strings.ToLower(envOr("DB_DRIVER", postgres.DriverPostgres)),
		DBHost:          envOr("DB_HOST", "localhost"),
		DBPort:          envOr("DB_PORT", "5432"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          envOr("DB_NAME", "freight"),
		DBSslMode:       envOr("DB_SSLMODE", "disable"),
		SQLitePath:      envOr("SQLITE_PATH", "freight.db"),
		EventBroker:     strings.ToLower(envOr("EVENT_BROKER", BrokerNone)),
		KafkaBrokers:    splitList(os.Getenv("KAFKA_BROKER")),
		KafkaTopic:      envOr("KAFKA_TOPIC", "freight.events"),
		RabbitMQURL:     os.Getenv("RABBITMQ_URL"),
		RabbitMQQueue:   envOr("RABBITMQ_QUEUE", "freight.events"),
		OutboxSchedule:  envOr("OUTBOX_SCHEDULE", jobs.DefaultOutboxSchedule),
		OutboxBatchSize: batchSize,
		DefaultTaxRate:  taxRate,
		InvoiceIssuer:   envOr("INVOICE_ISSUER", "Freight"),
		InvoiceCurrency: envOr("INVOICE_CURRENCY", "EUR"),
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks the settings that cannot be defaulted.
func (c Config) Validate() error {
	var problems []error

	switch c.DBDriver {
	case postgres.DriverPostgres:
		if c.DBUser == "" {
			problems = append(problems, errors.New("DB_USER is required for postgres"))
		}
	case postgres.DriverSQLite:
	default:
		problems = append(problems, fmt.Errorf("DB_DRIVER %q is not one of postgres, sqlite", c.DBDriver))
	}

	switch c.EventBroker {
	case BrokerNone:
	case BrokerKafka:
		if len(c.KafkaBrokers) == 0 {
			problems = append(problems, errors.New("KAFKA_BROKER is required for the kafka broker"))
		}
	case BrokerRabbitMQ:
		if c.RabbitMQURL == "" {
			problems = append(problems, errors.New("RABBITMQ_URL is required for the rabbitmq broker"))
		}
	default:
		problems = append(problems, fmt.Errorf("EVENT_BROKER %q is not one of none, kafka, rabbitmq", c.EventBroker))
	}

	if c.DefaultTaxRate.IsNegative() || c.DefaultTaxRate.GreaterThan(decimal.NewFromInt(100)) {
		problems = append(problems, fmt.Errorf("DEFAULT_TAX_RATE %s is outside 0..100", c.DefaultTaxRate))
	}

	return errors.Join(problems...)
}

// ConnectionConfig selects the database the service runs against.
func (c Config) ConnectionConfig() postgres.ConnectionConfig {
	if c.DBDriver == postgres.DriverSQLite {
		return postgres.ConnectionConfig{
			Driver:       postgres.DriverSQLite,
			DSN:          c.SQLitePath,
			MaxOpenConns: 1,
		}
	}
	return postgres.ConnectionConfig{
		Driver:       postgres.DriverPostgres,
		DSN:          postgres.PostgresDSN(c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode),
		MaxOpenConns: 20,
		MaxIdleConns: 5,
	}
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
