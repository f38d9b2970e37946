// Package logging provides structured logging for the ggadmin tools.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the client and the dev backend. Logging is silent
// by default: the tab UI degrades without user-visible errors, so diagnostics
// are opt-in and never change observable behavior.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (tab switches, dropped groups, requests)
//   - Info: Normal operations (connections, validation events)
//   - Warn: Non-fatal issues (connection drops, retries)
//   - Error: Fatal issues (startup failures, critical errors)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Backend connected",
//	    zap.String("remote_addr", "192.168.1.100"),
//	    zap.String("form_id", "listing/42"),
//	)
//
// # Specialized Logging
//
// The package provides domain-specific logging functions:
//
//	logging.LogTabSwitch("mk", "keyboard")
//	logging.LogDroppedGroup("listing-title-de", "de")
//	logging.LogValidationEvent(remoteAddr, formID, errorCount)
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Verbosity is controlled by the GGADMIN_LOG_LEVEL environment variable.
// Output goes to stderr so it never interleaves with TUI rendering.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
