package config

import "time"

// DefaultConfig returns the configuration the reference deployment ships
// with. The secret default exists so a local compose stack comes up without
// any environment; production overrides it via JWT_SECRET.
func DefaultConfig(service string) *Config {
	return &Config{
		Service: ServiceConfig{
			Name:     service,
			IP:       "0.0.0.0",
			Port:     defaultPort(service),
			Hostname: "unknown",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Auth: AuthConfig{
			Secret:   "microservices-secret-key-2024",
			TokenTTL: 24 * time.Hour,
		},
		Store: StoreConfig{
			Host:     "db",
			Port:     5432,
			Name:     "microservices",
			User:     "app_user",
			Password: "securepassword123",
			Timeout:  5 * time.Second,
		},
		Credentials: CredentialsConfig{
			Driver: "memory",
		},
	}
}

func defaultPort(service string) int {
	switch service {
	case "auth-service":
		return 5002
	case "transaction-service":
		return 5001
	default:
		return 5000
	}
}
