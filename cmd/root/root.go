// Package root contains the root command for the application
package root

import (
	"fjacquet/expense-csv/internal/config"
	"fjacquet/expense-csv/internal/container"
	"fjacquet/expense-csv/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are shared by multiple commands
type CommonFlags struct {
	Input     string
	Output    string
	Rules     string
	LogLevel  string
	LogFormat string
	Delimiter string
}

var (
	// SharedFlags holds the persistent flag values for all commands
	SharedFlags = CommonFlags{}

	// AppContainer is the wired application container, set during command
	// setup before any subcommand runs
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "expense-csv",
		Short: "A CLI tool to clean, categorize and report on expense CSV files.",
		Long: `expense-csv is a CLI tool that cleans expense CSV files, assigns every
expense a category based on keyword rules, and reports on spending with
monthly trends, budget comparisons and saving tips.`,
		Run: func(cmd *cobra.Command, args []string) {
			GetLogger().Info("Welcome to expense-csv!")
			GetLogger().Info("Use --help to see available commands")
		},
		PersistentPreRunE: setupFunc,
	}
)

// Init initializes the root command and all persistent flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input CSV file (directory for batch)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (directory for batch)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Rules, "rules", "", "Category rules YAML file")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text, json)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Delimiter, "delimiter", "", "CSV field delimiter")
}

// setupFunc loads configuration and wires the application container before
// any command runs. Flags override config file and environment values.
func setupFunc(cmd *cobra.Command, args []string) error {
	config.LoadEnv()

	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("rules") {
		cfg.Rules.File = SharedFlags.Rules
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = SharedFlags.LogFormat
	}
	if cmd.Flags().Changed("delimiter") {
		cfg.CSV.Delimiter = SharedFlags.Delimiter
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	AppContainer, err = container.NewContainer(cfg)
	return err
}

// GetContainer returns the application container wired during command setup.
// It is nil until the root command's PersistentPreRun has run.
func GetContainer() *container.Container {
	return AppContainer
}

// GetLogger returns the container's logger, or a default one before setup.
func GetLogger() logging.Logger {
	if AppContainer != nil {
		return AppContainer.GetLogger()
	}
	return logging.NewDefault()
}
