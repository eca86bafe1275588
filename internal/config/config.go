package config

import "time"

// GathererConfig is the root configuration for a gatherer run.
type GathererConfig struct {
	Instance InstanceConfig `yaml:"instance"`
	API      APIConfig      `yaml:"api"`
	Store    StoreConfig    `yaml:"store"`
	Export   ExportConfig   `yaml:"export"`
	Archive  ArchiveConfig  `yaml:"archive"`
}

// InstanceConfig identifies this gatherer.
type InstanceConfig struct {
	ID string `yaml:"id"`
}

// APIConfig holds Hypixel API settings.
type APIConfig struct {
	BaseURL   string        `yaml:"base_url"`
	APIKey    string        `yaml:"api_key"` // optional, raises the rate limit
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
}

// StoreConfig holds snapshot store settings.
type StoreConfig struct {
	Dir string `yaml:"dir"`
}

// ExportConfig holds CSV export settings.
type ExportConfig struct {
	Path string `yaml:"path"`
}

// ArchiveConfig holds the optional Postgres quick-status archive.
type ArchiveConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Database DBConfig `yaml:"database"`
}

// DBConfig holds a single database connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}
