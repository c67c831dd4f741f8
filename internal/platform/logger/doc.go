// Package logger provides structured logging setup for the coachkit tools.
//
// It utilizes Go's standard library log/slog package to implement structured
// JSON logging with configurable log levels. The model packages themselves
// never log; only the command-line tools do.
package logger
