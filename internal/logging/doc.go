// Package logging provides structured logging for termform.
//
// This package wraps zap logger with convenience functions for the events the
// form engine produces: fields being filled, input being rejected, keys being
// decoded and the terminal switching line discipline.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Key decoding, terminal mode changes, redraws
//   - Info: Fields filled, forms completed
//   - Warn: Rejected input (validation or parse failures)
//   - Error: Terminal I/O failures
//
// # Configuration
//
// Logging is silent unless a level is given, either explicitly or through the
// TERMFORM_LOG_LEVEL environment variable:
//
//	if err := logging.Initialize(""); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Output Format
//
// Logs are written to stderr in console format so they never interleave with
// prompts and redraws on stdout:
//
//	2025-11-25T10:30:45.123-0800  INFO  Field filled
//	  field=age
//	  kind=text
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
