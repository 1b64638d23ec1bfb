// Package config provides Viper-based hierarchical configuration: defaults,
// then an optional config file, then EXPENSE_* environment variables.
package config

import (
	"fmt"
	"strings"

	"fjacquet/expense-csv/internal/models"
	"fjacquet/expense-csv/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Rules struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"rules" yaml:"rules"`

	Budget struct {
		Groceries     float64 `mapstructure:"groceries" yaml:"groceries"`
		Rent          float64 `mapstructure:"rent" yaml:"rent"`
		Utilities     float64 `mapstructure:"utilities" yaml:"utilities"`
		Entertainment float64 `mapstructure:"entertainment" yaml:"entertainment"`
	} `mapstructure:"budget" yaml:"budget"`

	Report struct {
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"report" yaml:"report"`
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	for _, r := range c.CSV.Delimiter {
		return r
	}
	return ','
}

// DecimalBudgets converts the configured budget amounts to decimals.
func (c *Config) DecimalBudgets() models.Budgets {
	return models.Budgets{
		Groceries:     decimal.NewFromFloat(c.Budget.Groceries),
		Rent:          decimal.NewFromFloat(c.Budget.Rent),
		Utilities:     decimal.NewFromFloat(c.Budget.Utilities),
		Entertainment: decimal.NewFromFloat(c.Budget.Entertainment),
	}
}

// InitializeConfig loads the configuration: defaults first, then an
// optional config.yaml from $HOME/.expense-csv, ./.expense-csv or the
// working directory, then EXPENSE_* environment variables on top.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.expense-csv")
	v.AddConfigPath(".expense-csv")
	v.AddConfigPath(".")

	v.SetEnvPrefix("EXPENSE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
		// No config file is fine, defaults and env vars apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	// Empty means the rule store searches its default locations.
	v.SetDefault("rules.file", "")

	v.SetDefault("budget.groceries", 200.0)
	v.SetDefault("budget.rent", 1000.0)
	v.SetDefault("budget.utilities", 150.0)
	v.SetDefault("budget.entertainment", 100.0)

	v.SetDefault("report.format", "text")
}

// Validate checks that every configured value is usable.
func (c *Config) Validate() error {
	if err := validation.IsValidLogLevel(c.Log.Level); err != nil {
		return err
	}
	if err := validation.IsValidLogFormat(c.Log.Format); err != nil {
		return err
	}
	if err := validation.IsValidDelimiter(c.CSV.Delimiter); err != nil {
		return err
	}
	if err := validation.IsValidReportFormat(c.Report.Format); err != nil {
		return err
	}
	return c.DecimalBudgets().Validate()
}
