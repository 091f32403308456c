package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	ratingtypes "github.com/gridiron-analytics/gridrank/app/modules/rating/domain/types"
)

// Config struct to hold the configuration settings
type Config struct {
	Postgres      PostgresConfig           `yaml:"postgres"`
	HTTP          HTTPConfig               `yaml:"http"`
	Provider      ProviderConfig           `yaml:"provider"`
	Observability ObservabilityConfig      `yaml:"observability"`
	Engine        ratingtypes.EngineConfig `yaml:"engine"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// HTTPConfig holds the API server configuration.
type HTTPConfig struct {
	Address string `yaml:"address"`
}

// ProviderConfig holds the sports-data provider configuration.
type ProviderConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	MetricsAddress string `yaml:"metrics_address"`
	Environment    string `yaml:"environment"`
}

// LoadConfig loads the configuration from a YAML file, falling back to
// environment variables when the file is absent. Env vars always win over
// file values.
func LoadConfig(filename string) (*Config, error) {
	cfg := Config{Engine: ratingtypes.DefaultEngineConfig()}

	data, err := os.ReadFile(filename)
	if err != nil {
		return loadConfigFromEnv(cfg)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnvOverrides(&cfg)

	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("postgres DSN not configured")
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("PROVIDER_BASE_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("PROVIDER_API_KEY"); v != "" {
		cfg.Provider.APIKey = v
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.Observability.MetricsAddress = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
	if v := os.Getenv("ENGINE_K_FACTOR"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Engine.KFactor = f
		}
	}
	if v := os.Getenv("ENGINE_HOME_FIELD_ADVANTAGE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Engine.HomeFieldAdvantage = f
		}
	}
	if v := os.Getenv("ENGINE_TIE_GOES_TO_HOME"); v != "" {
		cfg.Engine.TieGoesToHome = v == "true"
	}
}

// loadConfigFromEnv loads the configuration from environment variables.
func loadConfigFromEnv(cfg Config) (*Config, error) {
	applyEnvOverrides(&cfg)

	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}
	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":8080"
	}
	return &cfg, nil
}
