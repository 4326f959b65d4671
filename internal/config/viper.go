// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
		StoreFile string `mapstructure:"store_file" yaml:"store_file"`
	} `mapstructure:"data" yaml:"data"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Import struct {
		MaxFileSizeMB int     `mapstructure:"max_file_size_mb" yaml:"max_file_size_mb"`
		MaxAmount     float64 `mapstructure:"max_amount" yaml:"max_amount"`

		// LivretInterestAsIncome decides whether interest earned on a
		// savings instrument counts toward gross income during a bank
		// import, or only toward the instrument balance.
		LivretInterestAsIncome bool `mapstructure:"livret_interest_as_income" yaml:"livret_interest_as_income"`
	} `mapstructure:"import" yaml:"import"`
}

// InitializeConfig loads configuration from defaults, an optional YAML
// config file and environment variables, in that order of precedence.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.budget-manager")
	v.AddConfigPath(".budget-manager")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BUDGET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
		// No config file is fine; defaults and env vars apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.directory", ".")
	v.SetDefault("data.store_file", "budget.db")

	v.SetDefault("csv.delimiter", ";")

	v.SetDefault("import.max_file_size_mb", 10)
	v.SetDefault("import.max_amount", 1_000_000_000)
	v.SetDefault("import.livret_interest_as_income", true)
}

func validateConfig(c *Config) error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %s", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %s", c.Log.Format)
	}
	if len(c.CSV.Delimiter) == 0 {
		return fmt.Errorf("csv delimiter must not be empty")
	}
	if c.Import.MaxFileSizeMB <= 0 {
		return fmt.Errorf("max file size must be positive")
	}
	if c.Import.MaxAmount <= 0 {
		return fmt.Errorf("max amount must be positive")
	}
	return nil
}

// Delimiter returns the configured CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	return []rune(c.CSV.Delimiter)[0]
}

// MaxFileBytes returns the import size limit in bytes.
func (c *Config) MaxFileBytes() int64 {
	return int64(c.Import.MaxFileSizeMB) * 1024 * 1024
}

// MaxAmount returns the plausibility ceiling for amounts.
func (c *Config) MaxAmount() decimal.Decimal {
	return decimal.NewFromFloat(c.Import.MaxAmount)
}
