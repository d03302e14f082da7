// Package config loads and validates application configuration.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Contact  ContactConfig  `mapstructure:"contact"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// ContactConfig backs the static contact-info endpoint. When no values are
// configured the endpoint serves a "config unavailable" fallback, mirroring
// the behavior of a missing central config server.
type ContactConfig struct {
	Message        string            `mapstructure:"message"`
	ContactDetails map[string]string `mapstructure:"contact_details"`
	OnCallSupport  []string          `mapstructure:"on_call_support"`
}
