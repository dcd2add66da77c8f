// Package logger provides the logging facilities shared by the REST API and
// the CLI. Console output goes through a slog text handler, file output
// through a rotated slog JSON handler.
package logger

// Logger defines the logging interface
type Logger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
}
