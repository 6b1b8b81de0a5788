package config

import (
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TODOS_AUTH__SECRET_KEY", "test-secret")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("server.port: got %q, want %q", cfg.Server.Port, "8080")
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("database.driver: got %q, want %q", cfg.Database.Driver, DriverPostgres)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("auth.token_ttl: got %v, want %v", cfg.Auth.TokenTTL, 24*time.Hour)
	}
	if cfg.Redis.Enabled() {
		t.Errorf("redis should be disabled without an address")
	}
	if cfg.Observability.ServiceName != ServiceName {
		t.Errorf("service name: got %q, want %q", cfg.Observability.ServiceName, ServiceName)
	}
	if cfg.Observability.NewRelic.Enabled() {
		t.Errorf("new relic should be disabled without a license key")
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("TODOS_PRIMARY__ENV", "production")
	t.Setenv("TODOS_SERVER__PORT", "9090")
	t.Setenv("TODOS_DATABASE__DRIVER", "sqlite")
	t.Setenv("TODOS_DATABASE__PATH", "/tmp/todos.db")
	t.Setenv("TODOS_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("TODOS_AUTH__TOKEN_TTL", "90m")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("server.port: got %q, want %q", cfg.Server.Port, "9090")
	}
	if cfg.Database.Driver != DriverSQLite || cfg.Database.Path != "/tmp/todos.db" {
		t.Errorf("database: got %q at %q", cfg.Database.Driver, cfg.Database.Path)
	}
	if got, want := cfg.Server.CORSAllowedOrigins, []string{"https://a.example", "https://b.example"}; !slices.Equal(got, want) {
		t.Errorf("cors origins: got %q, want %q", got, want)
	}
	if cfg.Auth.TokenTTL != 90*time.Minute {
		t.Errorf("auth.token_ttl: got %v, want %v", cfg.Auth.TokenTTL, 90*time.Minute)
	}
	if !cfg.Observability.IsProduction() {
		t.Errorf("observability environment: got %q, want production", cfg.Observability.Environment)
	}
}

func TestEnvValueSplitsLists(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantKey string
		want    any
	}{
		{"TODOS_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example", "server.cors_allowed_origins", []string{"https://a.example", "https://b.example"}},
		{"TODOS_OBSERVABILITY__HEALTH_CHECKS__CHECKS", "database,,", "observability.health_checks.checks", []string{"database"}},
		{"TODOS_SERVER__PORT", "8080", "server.port", "8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, got := envValue(tt.name, tt.value)
			if key != tt.wantKey {
				t.Errorf("key: got %q, want %q", key, tt.wantKey)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("value: got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	setRequired(t)

	path := filepath.Join(t.TempDir(), "todos.toml")
	content := `
[server]
port = "7070"

[database]
driver = "sqlite"
path = "file.db"

[redis]
address = "localhost:6379"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv(ConfigFileEnv, path)
	// env still wins over the file
	t.Setenv("TODOS_DATABASE__PATH", "env.db")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "7070" {
		t.Errorf("server.port: got %q, want %q", cfg.Server.Port, "7070")
	}
	if cfg.Database.Path != "env.db" {
		t.Errorf("database.path: got %q, want %q", cfg.Database.Path, "env.db")
	}
	if !cfg.Redis.Enabled() {
		t.Errorf("redis should be enabled from the file")
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing secret", env: map[string]string{}},
		{name: "unknown driver", env: map[string]string{"TODOS_AUTH__SECRET_KEY": "s", "TODOS_DATABASE__DRIVER": "mysql"}},
		{name: "bad log level", env: map[string]string{"TODOS_AUTH__SECRET_KEY": "s", "TODOS_OBSERVABILITY__LOGGING__LEVEL": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TODOS_AUTH__SECRET_KEY", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := LoadConfig(); err == nil {
				t.Errorf("LoadConfig: expected an error")
			}
		})
	}
}
