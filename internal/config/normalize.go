package config

import (
	"fmt"
	"os"
	"strings"

	"transcriptgrab/internal/language"
)

func (c *Config) normalize() error {
	if err := c.normalizeRetrieval(); err != nil {
		return err
	}
	c.normalizeYtdlp()
	if err := c.normalizeCache(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeRetrieval() error {
	lang := strings.TrimSpace(c.Retrieval.Language)
	if lang == "" {
		if value, ok := os.LookupEnv("TRANSCRIPTGRAB_LANG"); ok {
			lang = strings.TrimSpace(value)
		}
	}
	if lang == "" {
		lang = defaultLanguage
	}
	if mapped := language.ToCode(lang); mapped != "" {
		lang = mapped
	}
	c.Retrieval.Language = lang

	if c.Retrieval.HTTPTimeout <= 0 {
		c.Retrieval.HTTPTimeout = defaultHTTPTimeout
	}
	if c.Retrieval.Attempts <= 0 {
		c.Retrieval.Attempts = defaultAttempts
	}
	c.Retrieval.UserAgent = strings.TrimSpace(c.Retrieval.UserAgent)
	return nil
}

func (c *Config) normalizeYtdlp() {
	c.Ytdlp.Binary = strings.TrimSpace(c.Ytdlp.Binary)
	if c.Ytdlp.Binary == "" {
		c.Ytdlp.Binary = defaultYtdlpBinary
	}
	if c.Ytdlp.Timeout <= 0 {
		c.Ytdlp.Timeout = defaultYtdlpTimeout
	}
}

func (c *Config) normalizeCache() error {
	var err error
	if strings.TrimSpace(c.Cache.Dir) == "" {
		c.Cache.Dir = defaultCacheDir()
	}
	if c.Cache.Dir, err = expandPath(c.Cache.Dir); err != nil {
		return fmt.Errorf("cache.dir: %w", err)
	}
	if c.Cache.TTLDays < 0 {
		c.Cache.TTLDays = 0
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
