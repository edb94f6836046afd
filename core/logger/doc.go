// Package logger provides a structured logging facility based on Zap.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Global logger
//
// Library packages log through zap.L() rather than taking a logger argument.
// The CLI replaces the global logger once the configuration is loaded, and
// Named hands out component-scoped children of it.
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	defer log.Sync()
//	zap.ReplaceGlobals(log)
//
//	logger.Named("date").Debug("Field write rejected", zap.Int("value", v))
package logger
