// Package config loads the application configuration.
//
// Sources are layered, later ones winning:
//   - built-in defaults (koanf confmap provider)
//   - an optional TOML file named by TODOS_CONFIG_FILE
//   - environment variables prefixed with TODOS_ (a `.env` file is autoloaded)
//
// The result is decoded into typed structs and validated so the app fails
// fast on bad or missing config.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process env before we read it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is stripped from every environment variable we read.
	EnvPrefix = "TODOS_"

	// ConfigFileEnv names the optional TOML config file.
	ConfigFileEnv = "TODOS_CONFIG_FILE"

	// nestingSeparator splits env var names into koanf key paths:
	//
	//	TODOS_SERVER__PORT -> server.port
	nestingSeparator = "__"
)

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string          `koanf:"port" validate:"required"`
	ReadTimeout        int             `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int             `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int             `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string        `koanf:"cors_allowed_origins" validate:"required"`
	RateLimit          RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig configures the per-IP token bucket.
type RateLimitConfig struct {
	Enabled           bool          `koanf:"enabled"`
	RequestsPerSecond float64       `koanf:"requests_per_second" validate:"required_if=Enabled true"`
	Burst             int           `koanf:"burst"`
	ExpiresIn         time.Duration `koanf:"expires_in"`
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig selects the store and holds its connection parameters.
//
// The Postgres fields are only required when Driver is "postgres"; Path is
// only required for "sqlite".
type DatabaseConfig struct {
	Driver          string `koanf:"driver" validate:"required,oneof=postgres sqlite"`
	Host            string `koanf:"host" validate:"required_if=Driver postgres"`
	Port            int    `koanf:"port" validate:"required_if=Driver postgres"`
	User            string `koanf:"user" validate:"required_if=Driver postgres"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name" validate:"required_if=Driver postgres"`
	SSLMode         string `koanf:"ssl_mode" validate:"required_if=Driver postgres"`
	Path            string `koanf:"path" validate:"required_if=Driver sqlite"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required,min=1"`
	MaxIdleConns    int    `koanf:"max_idle_conns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time"`
}

// RedisConfig contains Redis connection details.
// An empty Address disables Redis and the background job worker.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

// AuthConfig holds the token signing secret and token lifetime.
type AuthConfig struct {
	SecretKey string        `koanf:"secret_key" validate:"required"`
	TokenTTL  time.Duration `koanf:"token_ttl" validate:"required"`
}

// IntegrationConfig holds third-party credentials.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from"`
}

func defaults() map[string]any {
	obs := DefaultObservabilityConfig()

	return map[string]any{
		"primary.env": "development",

		"server.port":                           "8080",
		"server.read_timeout":                   30,
		"server.write_timeout":                  30,
		"server.idle_timeout":                   60,
		"server.cors_allowed_origins":           []string{"http://localhost:3000"},
		"server.rate_limit.enabled":             true,
		"server.rate_limit.requests_per_second": 20.0,
		"server.rate_limit.burst":               40,
		"server.rate_limit.expires_in":          "3m",

		"database.driver":             DriverPostgres,
		"database.host":               "localhost",
		"database.port":               5432,
		"database.user":               "postgres",
		"database.name":               "todos",
		"database.ssl_mode":           "disable",
		"database.path":               "todos.db",
		"database.max_open_conns":     25,
		"database.max_idle_conns":     25,
		"database.conn_max_lifetime":  300,
		"database.conn_max_idle_time": 300,

		"auth.token_ttl": "24h",

		"integration.email_from": "Todos <onboarding@resend.dev>",

		"observability.logging.level":                         obs.Logging.Level,
		"observability.logging.format":                        obs.Logging.Format,
		"observability.logging.slow_query_threshold":          obs.Logging.SlowQueryThreshold.String(),
		"observability.new_relic.app_log_forwarding_enabled":  obs.NewRelic.AppLogForwardingEnabled,
		"observability.new_relic.distributed_tracing_enabled": obs.NewRelic.DistributedTracingEnabled,
		"observability.health_checks.enabled":                 obs.HealthChecks.Enabled,
		"observability.health_checks.interval":                obs.HealthChecks.Interval.String(),
		"observability.health_checks.timeout":                 obs.HealthChecks.Timeout.String(),
		"observability.health_checks.checks":                  obs.HealthChecks.Checks,
	}
}

// envKey maps an environment variable name to a koanf key path.
//
//	TODOS_DATABASE__MAX_OPEN_CONNS -> database.max_open_conns
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, nestingSeparator, ".")
}

// listKeys are decoded from comma-separated environment values.
var listKeys = map[string]bool{
	"server.cors_allowed_origins":         true,
	"observability.health_checks.checks": true,
}

// envValue maps an environment variable to its key path and value, splitting
// list keys on commas.
//
//	TODOS_SERVER__CORS_ALLOWED_ORIGINS=a,b -> server.cors_allowed_origins: [a b]
func envValue(name, value string) (string, any) {
	key := envKey(name)
	if !listKeys[key] {
		return key, value
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

// LoadConfig loads, decodes and validates the configuration.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("could not load config defaults: %w", err)
	}

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := k.Load(file.Provider(path), TOML()); err != nil {
			return nil, fmt.Errorf("could not load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary config.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
