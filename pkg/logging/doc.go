// Package logging provides structured logging utilities for the telemetry
// subsystem.
//
// # Overview
//
// This package wraps the standard library slog package with project
// defaults and conventions for consistent logging across the library and
// the arctel CLI. It supports environment-based log level configuration,
// module/version context injection, and automatic source location tracking
// for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("arctel", "v1.0.0")
//
//	    slog.Info("session started", "id", telemetryID)
//	    slog.Error("submission failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("webservice", "v1.0.0", "debug")
//	logger.Debug("payload assembled", "fields", n)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug arctel session
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "session started",
//	    "module": "arctel",
//	    "version": "v1.0.0",
//	    "id": 1234
//	}
//
// Telemetry must never crash or block the host application; logging is the
// only side channel failures are reported through, so every degrade path in
// the other packages writes here.
package logging
