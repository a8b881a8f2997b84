// Package container wires the expense tracker's dependencies: the logger,
// the expense store and the report generator, all built from one Config.
package container

import (
	"fmt"

	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/report"
	"fjacquet/expense-tracker/internal/store"
)

// Container holds the application dependencies. It is immutable after
// creation; dependencies are reached through getters.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	store     *store.ExpenseStore
	generator *report.ReportGenerator
}

// NewContainer builds the logger from cfg and opens the expense store.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, config.ConfigureLoggingFromConfig(cfg))
}

// NewContainerWithLogger is NewContainer with a caller-supplied logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	expenseStore, err := store.Open(cfg.Storage.File,
		store.WithLogger(logger),
		store.WithLegacyEscape(cfg.CSV.LegacyEscape),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open expense store: %w", err)
	}

	logger.Debug("Container initialized",
		logging.F(logging.FieldFile, cfg.Storage.File),
		logging.F(logging.FieldLegacy, cfg.CSV.LegacyEscape))

	return &Container{
		logger:    logger,
		config:    cfg,
		store:     expenseStore,
		generator: report.NewReportGenerator(logger),
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

// GetStore returns the expense store.
func (c *Container) GetStore() *store.ExpenseStore {
	return c.store
}

// GetReportGenerator returns the report generator.
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.generator
}
