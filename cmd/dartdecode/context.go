package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"dartdecode/internal/config"
	"dartdecode/internal/logging"
)

type globalFlags struct {
	config    string
	settings  string
	logLevel  string
	logFormat string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	runID      string
	loggerErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, string, error) {
	c.configOnce.Do(func() {
		c.config, c.configPath, c.configErr = config.Load(c.flags.config)
	})
	return c.config, c.configPath, c.configErr
}

func (c *commandContext) loadConfig() (*config.Config, error) {
	cfg, _, err := c.ensureConfig()
	return cfg, err
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		settings, _, _, err := config.LoadSettings(c.flags.settings)
		if err != nil {
			c.loggerErr = fmt.Errorf("load settings: %w", err)
			return
		}
		if level := strings.TrimSpace(c.flags.logLevel); level != "" {
			settings.Logging.Level = level
		}
		if format := strings.TrimSpace(c.flags.logFormat); format != "" {
			settings.Logging.Format = format
		}
		c.runID = uuid.NewString()
		c.logger, c.loggerErr = logging.NewFromSettings(settings.Logging, c.runID)
	})
	return c.logger, c.loggerErr
}

// loggerValue returns the run logger, or a no-op logger when logging could not
// be set up.
func (c *commandContext) loggerValue() *slog.Logger {
	logger, err := c.ensureLogger()
	if err != nil || logger == nil {
		return logging.NewNop()
	}
	return logger
}

func shouldSkipLogging(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipLogging"] == "true" {
			return true
		}
	}
	return false
}
