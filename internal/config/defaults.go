package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL    = "https://api.hypixel.net/v2"
	DefaultAPITimeout = 30 * time.Second
	DefaultStoreDir   = "raw"
	DefaultExportPath = "bazaar.csv"
	DefaultDBPort     = 5432
	DefaultDBSSLMode  = "prefer"
	DefaultMaxConns   = 10
	DefaultMinConns   = 2
)

func (c *GathererConfig) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}

	// Store and export defaults
	if c.Store.Dir == "" {
		c.Store.Dir = DefaultStoreDir
	}
	if c.Export.Path == "" {
		c.Export.Path = DefaultExportPath
	}

	// Archive database defaults
	applyDBDefaults(&c.Archive.Database)
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
