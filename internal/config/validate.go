package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTool(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTool() error {
	if c.Tool.Name == "" {
		return errors.New("tool.name must be set")
	}
	if strings.ContainsAny(c.Tool.Name, `/\`) {
		return fmt.Errorf("tool.name %q must be a bare tool name, not a path", c.Tool.Name)
	}
	if c.Tool.Palette == "" {
		return errors.New("tool.palette must be set")
	}
	if c.Tool.TimeoutSeconds < 0 {
		return errors.New("tool.timeout_seconds must be >= 0")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
