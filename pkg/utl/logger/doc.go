// Package logger wraps zap with a switch for chatty output.
//
// Log, Debug and Info go quiet when the logger is disabled; Warn and Error
// always write. Nil messages are skipped.
package logger
