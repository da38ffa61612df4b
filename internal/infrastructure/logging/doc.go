// Package logging provides structured logging for the Estate API.
//
// It wraps log/slog with service defaults: JSON output for production, text
// for development, and default service/version attributes on every record.
package logging
