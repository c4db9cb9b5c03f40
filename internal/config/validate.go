package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRetrieval(); err != nil {
		return err
	}
	if err := c.validateYtdlp(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateRetrieval() error {
	if strings.TrimSpace(c.Retrieval.Language) == "" {
		return errors.New("retrieval.language must be set")
	}
	if err := ensurePositiveMap(map[string]int{
		"retrieval.http_timeout": c.Retrieval.HTTPTimeout,
		"retrieval.attempts":     c.Retrieval.Attempts,
	}); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateYtdlp() error {
	if strings.TrimSpace(c.Ytdlp.Binary) == "" {
		return errors.New("ytdlp.binary must be set")
	}
	if c.Ytdlp.Timeout <= 0 {
		return errors.New("ytdlp.timeout must be positive (seconds)")
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.Enabled && strings.TrimSpace(c.Cache.Dir) == "" {
		return errors.New("cache.dir must be set when cache.enabled is true")
	}
	if c.Cache.TTLDays < 0 {
		return errors.New("cache.ttl_days must be >= 0")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not supported", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not supported", c.Logging.Level)
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
