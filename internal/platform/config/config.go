package config

import (
	"fmt"
	"time"
)

type Config struct {
	Service     ServiceConfig     `yaml:"service"`
	Log         LogConfig         `yaml:"log"`
	Auth        AuthConfig        `yaml:"auth"`
	Store       StoreConfig       `yaml:"store"`
	Credentials CredentialsConfig `yaml:"credentials"`
}

type ServiceConfig struct {
	Name     string `yaml:"name"`
	IP       string `yaml:"ip"`
	Port     int    `yaml:"port"`
	Hostname string `yaml:"hostname"`
}

type LogConfig struct {
	Level  string `yaml:"log_level"`
	Format string `yaml:"log_format"`
}

// AuthConfig carries the signing secret shared by every service in the
// fleet. Issuer and validator both receive it explicitly at construction;
// a mismatch between instances makes cross-service tokens unverifiable.
type AuthConfig struct {
	Secret   string        `yaml:"secret"`
	TokenTTL time.Duration `yaml:"token_ttl"`
}

// StoreConfig describes the shared relational record store.
type StoreConfig struct {
	Host     string        `yaml:"host"`
	Port     int           `yaml:"port"`
	Name     string        `yaml:"name"`
	User     string        `yaml:"user"`
	Password string        `yaml:"password"`
	Timeout  time.Duration `yaml:"timeout"`
}

// DSN renders the postgres connection string gorm expects.
func (s StoreConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=disable",
		s.Host, s.Port, s.Name, s.User, s.Password,
	)
}

// CredentialsConfig selects the credential lookup backend.
type CredentialsConfig struct {
	Driver string           `yaml:"driver"`
	Redis  RedisCredentials `yaml:"redis,omitempty"`
}

type RedisCredentials struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db,omitempty"`
	Prefix   string `yaml:"prefix,omitempty"`
}

// Validate checks the invariants the rest of the system relies on.
func (c *Config) Validate() error {
	if c.Service.Name == "" {
		return fmt.Errorf("service name required")
	}
	if c.Auth.Secret == "" {
		return fmt.Errorf("auth secret required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive")
	}
	if c.Store.Timeout <= 0 {
		return fmt.Errorf("store timeout must be positive")
	}
	return nil
}
