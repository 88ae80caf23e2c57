package config

import (
	"fmt"
	"strings"

	"codesum/internal/textnorm"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSummarize(); err != nil {
		return err
	}
	if err := c.validateTree(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSummarize() error {
	if _, err := textnorm.Parse(c.Summarize.Policy); err != nil {
		return fmt.Errorf("summarize.policy: %w", err)
	}
	return nil
}

func (c *Config) validateTree() error {
	if strings.ContainsAny(c.Tree.OutputFile, "/\\") {
		return fmt.Errorf("tree.output_file must be a bare file name, got %q", c.Tree.OutputFile)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
