package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	platformerrors "corebank/internal/platform/errors"
)

// Loader reads configuration in three layers: built-in defaults, an
// optional YAML file, then environment variables. Later layers win.
type Loader struct {
	service   string
	path      string
	useDotEnv bool
}

// NewLoader creates a loader for the named service.
func NewLoader(service string) *Loader {
	return &Loader{
		service:   service,
		path:      ".config.yaml",
		useDotEnv: true,
	}
}

// WithPath overrides the YAML file location.
func (l *Loader) WithPath(path string) *Loader {
	if path != "" {
		l.path = path
	}
	return l
}

// WithDotEnv toggles loading variables from a .env file before reading config.
func (l *Loader) WithDotEnv(enabled bool) *Loader {
	l.useDotEnv = enabled
	return l
}

// Load resolves the effective configuration.
func (l *Loader) Load() (*Config, error) {
	if l.useDotEnv {
		_ = godotenv.Load()
	}

	cfg := DefaultConfig(l.service)

	if data, err := os.ReadFile(l.path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, platformerrors.Wrap(
				platformerrors.KindConfig,
				"config load",
				"parse config file",
				err,
			)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, platformerrors.Wrap(
			platformerrors.KindConfig,
			"config load",
			"validate config",
			err,
		)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Auth.Secret, "JWT_SECRET")
	setString(&cfg.Store.Host, "DB_HOST")
	setInt(&cfg.Store.Port, "DB_PORT")
	setString(&cfg.Store.Name, "DB_NAME")
	setString(&cfg.Store.User, "DB_USER")
	setString(&cfg.Store.Password, "DB_PASSWORD")
	setString(&cfg.Service.Hostname, "HOSTNAME")
	setInt(&cfg.Service.Port, "PORT")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Format, "LOG_FORMAT")
	setString(&cfg.Credentials.Driver, "CREDENTIALS_DRIVER")
	setString(&cfg.Credentials.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Credentials.Redis.Password, "REDIS_PASSWORD")

	if v := os.Getenv("STORE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Store.Timeout = d
		}
	}
	if v := os.Getenv("JWT_EXPIRY_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			cfg.Auth.TokenTTL = time.Duration(hours) * time.Hour
		}
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
