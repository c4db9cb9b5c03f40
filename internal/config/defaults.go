package config

const (
	defaultLanguage     = "en"
	defaultHTTPTimeout  = 12
	defaultAttempts     = 3
	defaultYtdlpBinary  = "yt-dlp"
	defaultYtdlpTimeout = 120
	defaultCacheTTLDays = 7
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Retrieval: Retrieval{
			Language:    defaultLanguage,
			HTTPTimeout: defaultHTTPTimeout,
			Attempts:    defaultAttempts,
		},
		Ytdlp: Ytdlp{
			Binary:  defaultYtdlpBinary,
			Timeout: defaultYtdlpTimeout,
		},
		Cache: Cache{
			Enabled: true,
			Dir:     defaultCacheDir(),
			TTLDays: defaultCacheTTLDays,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
