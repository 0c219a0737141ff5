// Package config loads settings for both binaries. Sources are applied in
// order, later ones winning: built-in defaults, an optional YAML file
// (CONFIG_PATH, then config.yaml), environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const ConfigPathEnvVar = "CONFIG_PATH"

var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

type Config struct {
	Logging         LoggingConfig         `koanf:"logging"`
	Recommendations RecommendationsConfig `koanf:"recommendations"`
	Marketplace     MarketplaceConfig     `koanf:"marketplace"`
}

type LoggingConfig struct {
	Level       string `koanf:"level" validate:"oneof=debug info warn error"`
	Development bool   `koanf:"development"`
}

type RecommendationsConfig struct {
	ListenAddr    string        `koanf:"listen_addr" validate:"required"`
	AdminAddr     string        `koanf:"admin_addr"`
	MetricsToken  string        `koanf:"metrics_token"`
	Workers       int           `koanf:"workers" validate:"min=1,max=1024"`
	ShutdownGrace time.Duration `koanf:"shutdown_grace" validate:"gt=0"`

	CatalogSource string `koanf:"catalog_source" validate:"oneof=builtin file postgres"`
	CatalogFile   string `koanf:"catalog_file" validate:"required_if=CatalogSource file"`
	DatabaseURL   string `koanf:"database_url" validate:"required_if=CatalogSource postgres"`
}

type MarketplaceConfig struct {
	ListenAddr          string        `koanf:"listen_addr" validate:"required"`
	RecommendationsAddr string        `koanf:"recommendations_addr" validate:"required"`
	RequestTimeout      time.Duration `koanf:"request_timeout" validate:"gt=0"`
	ShutdownGrace       time.Duration `koanf:"shutdown_grace" validate:"gt=0"`
	RateLimitPerMinute  int           `koanf:"rate_limit_per_minute" validate:"min=0"`
	MetricsToken        string        `koanf:"metrics_token"`

	UserID     int64  `koanf:"user_id"`
	Category   string `koanf:"category" validate:"required"`
	MaxResults int    `koanf:"max_results" validate:"min=0,max=2147483647"`
}

func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Recommendations: RecommendationsConfig{
			ListenAddr:    "[::]:50051",
			AdminAddr:     ":9090",
			Workers:       10,
			ShutdownGrace: 30 * time.Second,
			CatalogSource: "builtin",
		},
		Marketplace: MarketplaceConfig{
			ListenAddr:          ":5000",
			RecommendationsAddr: "localhost:50051",
			RequestTimeout:      3 * time.Second,
			ShutdownGrace:       10 * time.Second,
			RateLimitPerMinute:  120,
			UserID:              1,
			Category:            "MYSTERY",
			MaxResults:          3,
		},
	}
}

// envMappings maps upper-case environment names to config keys. Unmapped
// variables are ignored.
var envMappings = map[string]string{
	"LOG_LEVEL":       "logging.level",
	"LOG_DEVELOPMENT": "logging.development",

	"RECOMMENDATIONS_LISTEN_ADDR":    "recommendations.listen_addr",
	"RECOMMENDATIONS_ADMIN_ADDR":     "recommendations.admin_addr",
	"RECOMMENDATIONS_METRICS_TOKEN":  "recommendations.metrics_token",
	"RECOMMENDATIONS_WORKERS":        "recommendations.workers",
	"RECOMMENDATIONS_SHUTDOWN_GRACE": "recommendations.shutdown_grace",
	"CATALOG_SOURCE":                 "recommendations.catalog_source",
	"CATALOG_FILE":                   "recommendations.catalog_file",
	"DATABASE_URL":                   "recommendations.database_url",

	"MARKETPLACE_LISTEN_ADDR":     "marketplace.listen_addr",
	"RECOMMENDATIONS_ADDR":        "marketplace.recommendations_addr",
	"MARKETPLACE_REQUEST_TIMEOUT": "marketplace.request_timeout",
	"MARKETPLACE_SHUTDOWN_GRACE":  "marketplace.shutdown_grace",
	"MARKETPLACE_RATE_LIMIT":      "marketplace.rate_limit_per_minute",
	"METRICS_TOKEN":               "marketplace.metrics_token",
	"MARKETPLACE_USER_ID":         "marketplace.user_id",
	"MARKETPLACE_CATEGORY":        "marketplace.category",
	"MARKETPLACE_MAX_RESULTS":     "marketplace.max_results",
}

func envTransformFunc(key string) string {
	return envMappings[strings.ToUpper(key)]
}

// Load reads the configuration and validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	path, err := findConfigFile()
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns the file to load, or "" for none. A CONFIG_PATH
// that cannot be read is an error; the default paths are optional.
func findConfigFile() (string, error) {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("%s=%s: %w", ConfigPathEnvVar, p, err)
		}
		return p, nil
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
