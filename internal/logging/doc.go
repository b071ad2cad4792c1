// Package logging provides structured logging for the stock panel.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the panel processes. It provides both general logging
// functions and specialized functions for panel-specific events.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (individual presses, remote call traces)
//   - Info: Normal operations (startup, watched pins, catalog range)
//   - Warn: Non-fatal issues (dropped press delivery, unknown pins)
//   - Error: Fatal issues (startup failures, remote service errors)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Watching GPIO pin",
//	    zap.Int("pin", 17),
//	    zap.String("role", "previous"),
//	)
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// When no level is given and STOCKPANEL_LOG_LEVEL is unset, logging is silent.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
