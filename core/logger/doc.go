// Package logger provides a structured logging facility based on Zap.
//
// Debug level selects zap's development configuration, anything else the
// production one. Logs are written to stderr, and optionally also to a
// file, so a report printed on stdout stays clean.
//
// # Run Correlation
//
// WithRun attaches the run_id of a diff run to a logger, so the entries of
// one comparison can be told apart in a shared log file.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//   - File: an extra output path
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRun(log, runID)
//	log.Warn("Sniffing failed", zap.Error(err))
package logger
