package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{Path: "./data/castkeep.db"},
		Admin:    AdminConfig{PerPage: 25, PaginationWindow: 2, ExcerptLength: 250, BasePath: "/admin"},
		Feeds:    FeedsConfig{DefaultLimit: 25, MaxLimit: 100, CacheTTL: 20 * time.Minute},
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidateInvalidPort(t *testing.T) {
	tests := []struct {
		name string
		port int
	}{
		{"zero port", 0},
		{"negative port", -1},
		{"port too large", 70000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Server.Port = tt.port
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfigValidateMissingDatabasePath(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Path = ""
	assert.Error(t, cfg.Validate())
}

func TestConfigValidateAutoCorrects(t *testing.T) {
	cfg := validConfig()
	cfg.Admin.PerPage = 0
	cfg.Feeds.DefaultLimit = -5

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 25, cfg.Admin.PerPage)
	assert.Equal(t, 25, cfg.Feeds.DefaultLimit)
}
