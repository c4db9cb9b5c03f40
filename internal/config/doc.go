// Package config loads, normalizes, and validates transcriptgrab
// configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// TRANSCRIPTGRAB_LANG. The Config type centralizes every knob the CLI needs:
// retrieval language and timeouts, the yt-dlp binary, the transcript cache,
// and log output.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
