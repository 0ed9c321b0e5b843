package logger

import "github.com/baditaflorin/go_fuzzy_compare/internal/ports"

type nopLogger struct{}

// Nop returns a logger that discards everything.
func Nop() ports.Logger {
	return nopLogger{}
}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Close() error                 { return nil }
