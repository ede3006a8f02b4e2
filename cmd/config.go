package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"orderdesk/internal/adapters/out/kafka"
	"orderdesk/internal/adapters/out/memory/sessionstore"
	"orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/jobs"
)

// Gateway backends selectable with GATEWAY_BACKEND.
const (
	BackendREST     = "rest"
	BackendPostgres = "postgres"
)

type Config struct {
	HTTPPort string
	LogLevel string

	GatewayBackend string
	CatalogAPIURL  string
	OrdersAPIURL   string
	GatewayTimeout time.Duration

	DB postgres.ConnectionConfig

	SessionTTL           time.Duration
	SessionCapacity      int
	SessionSweepSchedule string

	KafkaBrokers         string
	KafkaOrderSavedTopic string
}

// LoadConfig reads the configuration through getenv, filling defaults for
// unset keys.
func LoadConfig(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:       withDefault(getenv("HTTP_PORT"), "8080"),
		LogLevel:       withDefault(getenv("LOG_LEVEL"), "info"),
		GatewayBackend: strings.ToLower(withDefault(getenv("GATEWAY_BACKEND"), BackendREST)),
		CatalogAPIURL:  getenv("CATALOG_API_URL"),
		OrdersAPIURL:   getenv("ORDERS_API_URL"),
		DB: postgres.ConnectionConfig{
			Host:     getenv("DB_HOST"),
			Port:     withDefault(getenv("DB_PORT"), "5432"),
			User:     getenv("DB_USER"),
			Password: getenv("DB_PASSWORD"),
			Name:     getenv("DB_NAME"),
			SSLMode:  getenv("DB_SSLMODE"),
		},
		SessionSweepSchedule: withDefault(getenv("SESSION_SWEEP_SCHEDULE"), jobs.DefaultSessionSweepSchedule),
		KafkaBrokers:         getenv("KAFKA_BROKERS"),
		KafkaOrderSavedTopic: withDefault(getenv("KAFKA_ORDER_SAVED_TOPIC"), kafka.DefaultOrderSavedTopic),
	}

	var err error
	if config.GatewayTimeout, err = parseDuration(getenv, "GATEWAY_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if config.SessionTTL, err = parseDuration(getenv, "SESSION_TTL", 30*time.Minute); err != nil {
		return Config{}, err
	}
	if config.SessionCapacity, err = parseInt(getenv, "SESSION_CAPACITY", sessionstore.DefaultCapacity); err != nil {
		return Config{}, err
	}

	switch config.GatewayBackend {
	case BackendREST:
		if config.CatalogAPIURL == "" || config.OrdersAPIURL == "" {
			return Config{}, fmt.Errorf("CATALOG_API_URL and ORDERS_API_URL are required for the %s backend", BackendREST)
		}
	case BackendPostgres:
		if config.DB.Host == "" || config.DB.Name == "" {
			return Config{}, fmt.Errorf("DB_HOST and DB_NAME are required for the %s backend", BackendPostgres)
		}
	default:
		return Config{}, fmt.Errorf("unknown GATEWAY_BACKEND %q", config.GatewayBackend)
	}

	return config, nil
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func parseDuration(getenv func(string) string, key string, fallback time.Duration) (time.Duration, error) {
	raw := getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func parseInt(getenv func(string) string, key string, fallback int) (int, error) {
	raw := getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
