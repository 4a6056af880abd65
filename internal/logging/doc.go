// Package logging provides structured logging with per-module log level
// configuration.
//
// # Overview
//
// The logging system uses Go's slog package with automatic output routing:
//   - Logs to stderr, keeping stdout free for command output
//   - Logs additionally to the systemd journal when journald is listening
//
// # Usage
//
// Initialize the logging system once at startup:
//
//	logging.Initialize(logging.Config{
//		Level:  "info",      // Global log level: debug, info, warn, error
//		Format: "text",      // Output format: text or json
//		Modules: map[string]string{
//			"led": "debug",  // Per-module overrides
//		},
//	})
//
// Get a logger for your module:
//
//	logger := logging.GetLogger("mymodule")
//	logger.Info("Starting up", "target", "ring")
//	logger.Debug("Details", "line", line)
//	logger.Error("Failed", "error", err)
//
// # Viewing Logs
//
// When running from a systemd unit or timer:
//
//	journalctl -t nucledctl              # All nucledctl logs
//	journalctl -t nucledctl -p err       # Errors only
//	journalctl -t nucledctl MODULE=led   # Filter by structured field
//
// # Configuration
//
// Log levels can be set globally or per-module. Module-specific levels
// override the global level for that module only.
//
// Example TOML configuration:
//
//	[logging]
//	level = "info"
//	format = "text"
//
//	[logging.modules]
//	led = "debug"
package logging
