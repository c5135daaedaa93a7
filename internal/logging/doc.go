// Package logging provides structured logging for formulary.
//
// This package wraps a zap logger with convenience functions. Logging is
// silent by default: a form owns the terminal, so nothing is written unless
// FORMULARY_LOG_LEVEL is set. Output goes to stderr, or to the file named by
// FORMULARY_LOG_FILE, which is the practical choice while a full-screen
// wizard is running.
//
// # Log Levels
//
//   - Debug: question lifecycle, validation results, wizard navigation
//   - Info: run start/finish, cancellation
//   - Warn: recoverable problems such as an unreadable preferences file
//   - Error: definition errors and failed runs
//
// # Specialized Logging
//
//	logging.LogQuestion("email", "input", "accepted")
//	logging.LogValidation("email", []string{"this field is required"})
//	logging.LogStep("next", 2, "Email")
//	logging.LogRegistration("validator", "required")
//
// # Configuration
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
package logging
