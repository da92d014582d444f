package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoader_Load(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, ".config.yaml")

	configContent := `
service:
  ip: "127.0.0.1"
  port: 6000
log:
  log_level: "debug"
auth:
  secret: "file-secret"
  token_ttl: 1h
`

	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := NewLoader("auth-service").WithPath(configFile).WithDotEnv(false).Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Service.IP != "127.0.0.1" {
		t.Errorf("expected service IP 127.0.0.1, got %s", cfg.Service.IP)
	}
	if cfg.Service.Port != 6000 {
		t.Errorf("expected service port 6000, got %d", cfg.Service.Port)
	}
	if cfg.Auth.Secret != "file-secret" {
		t.Errorf("expected file secret, got %s", cfg.Auth.Secret)
	}
	if cfg.Auth.TokenTTL != time.Hour {
		t.Errorf("expected 1h ttl, got %v", cfg.Auth.TokenTTL)
	}
}

func TestLoader_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("HOSTNAME", "node-7")
	t.Setenv("STORE_TIMEOUT", "2s")
	t.Setenv("JWT_EXPIRY_HOURS", "12")

	cfg, err := NewLoader("account-service").WithDotEnv(false).Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Auth.Secret != "env-secret" {
		t.Errorf("expected env secret, got %s", cfg.Auth.Secret)
	}
	if cfg.Store.Host != "db.internal" || cfg.Store.Port != 5433 {
		t.Errorf("unexpected store config: %+v", cfg.Store)
	}
	if cfg.Service.Hostname != "node-7" {
		t.Errorf("expected hostname node-7, got %s", cfg.Service.Hostname)
	}
	if cfg.Store.Timeout != 2*time.Second {
		t.Errorf("expected 2s timeout, got %v", cfg.Store.Timeout)
	}
	if cfg.Auth.TokenTTL != 12*time.Hour {
		t.Errorf("expected 12h ttl, got %v", cfg.Auth.TokenTTL)
	}
}

func TestLoader_Defaults(t *testing.T) {
	tests := []struct {
		service string
		port    int
	}{
		{"auth-service", 5002},
		{"account-service", 5000},
		{"transaction-service", 5001},
	}

	for _, tt := range tests {
		t.Run(tt.service, func(t *testing.T) {
			cfg, err := NewLoader(tt.service).WithDotEnv(false).WithPath("does-not-exist.yaml").Load()
			if err != nil {
				t.Fatalf("failed to load config: %v", err)
			}
			if cfg.Service.Port != tt.port {
				t.Errorf("expected port %d, got %d", tt.port, cfg.Service.Port)
			}
			if cfg.Auth.TokenTTL != 24*time.Hour {
				t.Errorf("expected 24h ttl, got %v", cfg.Auth.TokenTTL)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig("auth-service")
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	broken := DefaultConfig("auth-service")
	broken.Auth.Secret = ""
	if err := broken.Validate(); err == nil {
		t.Fatal("expected validation failure for empty secret")
	}

	broken = DefaultConfig("auth-service")
	broken.Store.Timeout = 0
	if err := broken.Validate(); err == nil {
		t.Fatal("expected validation failure for zero timeout")
	}
}
