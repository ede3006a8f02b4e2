package cmd_test

import (
	"log/slog"
	"testing"
	"time"

	"orderdesk/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := cmd.LoadConfig(env(map[string]string{
		"CATALOG_API_URL": "http://catalog",
		"ORDERS_API_URL":  "http://orders",
	}))

	require.NoError(t, err)
	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, cmd.BackendREST, config.GatewayBackend)
	assert.Equal(t, 10*time.Second, config.GatewayTimeout)
	assert.Equal(t, 30*time.Minute, config.SessionTTL)
	assert.Equal(t, 1024, config.SessionCapacity)
	assert.Equal(t, "0 * * * * *", config.SessionSweepSchedule)
	assert.Equal(t, "order.saved", config.KafkaOrderSavedTopic)
	assert.Empty(t, config.KafkaBrokers)
}

func TestLoadConfig_Postgres(t *testing.T) {
	config, err := cmd.LoadConfig(env(map[string]string{
		"GATEWAY_BACKEND":  "Postgres",
		"DB_HOST":          "db",
		"DB_NAME":          "orders",
		"DB_USER":          "app",
		"SESSION_TTL":      "5m",
		"SESSION_CAPACITY": "10",
	}))

	require.NoError(t, err)
	assert.Equal(t, cmd.BackendPostgres, config.GatewayBackend)
	assert.Equal(t, "5432", config.DB.Port)
	assert.Equal(t, 5*time.Minute, config.SessionTTL)
	assert.Equal(t, 10, config.SessionCapacity)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"rest without urls", map[string]string{}},
		{"postgres without host", map[string]string{"GATEWAY_BACKEND": "postgres", "DB_NAME": "x"}},
		{"unknown backend", map[string]string{"GATEWAY_BACKEND": "grpc"}},
		{"bad ttl", map[string]string{"CATALOG_API_URL": "a", "ORDERS_API_URL": "b", "SESSION_TTL": "soon"}},
		{"bad capacity", map[string]string{"CATALOG_API_URL": "a", "ORDERS_API_URL": "b", "SESSION_CAPACITY": "many"}},
		{"bad timeout", map[string]string{"CATALOG_API_URL": "a", "ORDERS_API_URL": "b", "GATEWAY_TIMEOUT": "10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cmd.LoadConfig(env(tt.env))
			assert.Error(t, err)
		})
	}
}
