// Package logging constructs the slog loggers used across transcriptgrab.
//
// Logs always go to stderr (stdout is reserved for transcript output). The
// console format is a compact key=value line with the component inlined; the
// JSON format emits one object per record for machine consumption.
package logging
