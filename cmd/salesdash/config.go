package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tinytelemetry/salesdash/internal/model"

	"github.com/spf13/viper"
)

// cliConfig holds the dashboard configuration.
type cliConfig struct {
	BaseURL        string        `mapstructure:"base-url"`
	RequestTimeout time.Duration `mapstructure:"request-timeout"`
	LogLevel       string        `mapstructure:"log-level"`
	LogFile        string        `mapstructure:"log-file"`
	ExportDir      string        `mapstructure:"export-dir"`
	DefaultItemID  string        `mapstructure:"default-item-id"`
	DefaultStoreID string        `mapstructure:"default-store-id"`
}

func defaultLogFile(home string) string {
	return filepath.Join(home, ".local", "state", "salesdash", "salesdash.log")
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("SALESDASH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("base-url", model.DefaultBaseURL)
	v.SetDefault("request-timeout", model.DefaultRequestTimeout)
	v.SetDefault("log-level", "info")
	v.SetDefault("log-file", defaultLogFile(home))
	v.SetDefault("export-dir", ".")
	v.SetDefault("default-item-id", model.DefaultItemID)
	v.SetDefault("default-store-id", model.DefaultStoreID)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "salesdash", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	if cfg.RequestTimeout <= 0 {
		return cfg, fmt.Errorf("request-timeout must be positive, got %s", cfg.RequestTimeout)
	}

	return cfg, nil
}
