// Package container provides dependency injection for the expense-csv
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/expense-csv/internal/batch"
	"fjacquet/expense-csv/internal/categorizer"
	"fjacquet/expense-csv/internal/config"
	"fjacquet/expense-csv/internal/export"
	"fjacquet/expense-csv/internal/ingest"
	"fjacquet/expense-csv/internal/logging"
	"fjacquet/expense-csv/internal/models"
	"fjacquet/expense-csv/internal/report"
	"fjacquet/expense-csv/internal/store"
)

// Container holds all application dependencies. It is immutable after
// creation, components are reached only through getters.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	ruleStore *store.RuleStore
	matcher   *categorizer.Matcher
	reader    *ingest.Reader
	validator *ingest.Validator
	writer    *export.Writer
	generator *report.Generator
	processor *batch.Processor
}

// NewContainer creates and wires all application dependencies from the
// configuration. A broken rules file fails here, before any input is read.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	ruleStore := store.NewRuleStore(cfg.Rules.File, logger)
	rules, err := ruleStore.Load()
	if err != nil {
		return nil, err
	}

	matcher := categorizer.NewMatcher(rules, logger)
	delimiter := cfg.Delimiter()

	reader := ingest.NewReader(delimiter, logger)
	validator := ingest.NewValidator(matcher, logger)
	writer := export.NewWriter(delimiter, logger)

	logger.Debug("container initialized",
		logging.F(logging.FieldCount, len(rules)),
		logging.F(logging.FieldDelimiter, string(delimiter)))

	return &Container{
		logger:    logger,
		config:    cfg,
		ruleStore: ruleStore,
		matcher:   matcher,
		reader:    reader,
		validator: validator,
		writer:    writer,
		generator: report.NewGenerator(logger),
		processor: batch.NewProcessor(reader, validator, writer, logger),
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetRuleStore returns the container's rule store instance.
func (c *Container) GetRuleStore() *store.RuleStore {
	return c.ruleStore
}

// GetMatcher returns the container's category matcher instance.
func (c *Container) GetMatcher() *categorizer.Matcher {
	return c.matcher
}

// GetReader returns the container's table reader instance.
func (c *Container) GetReader() *ingest.Reader {
	return c.reader
}

// GetValidator returns the container's validator instance.
func (c *Container) GetValidator() *ingest.Validator {
	return c.validator
}

// GetWriter returns the container's table writer instance.
func (c *Container) GetWriter() *export.Writer {
	return c.writer
}

// GetGenerator returns the container's report generator instance.
func (c *Container) GetGenerator() *report.Generator {
	return c.generator
}

// GetBatchProcessor returns the container's batch processor instance.
func (c *Container) GetBatchProcessor() *batch.Processor {
	return c.processor
}

// GetBudgets returns the configured budget amounts as decimals.
func (c *Container) GetBudgets() models.Budgets {
	return c.config.DecimalBudgets()
}
