// Package logger wires github.com/baditaflorin/l into the ports.Logger
// interface used by the comparator, the warm-up manager and the readers.
package logger

import (
	"io"
	"os"

	"github.com/baditaflorin/go_fuzzy_compare/internal/ports"
	"github.com/baditaflorin/l"
)

// StdLogger forwards to an l.Logger.
type StdLogger struct {
	logger l.Logger
}

// DefaultConfig is the l configuration a Comparator uses for a logger it
// creates itself: text output, async writes and caller info.
func DefaultConfig(output io.Writer) l.Config {
	return l.Config{
		Output:      output,
		JsonFormat:  false,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,      // 1MB buffer
		MaxFileSize: 10 * 1024 * 1024, // 10MB max file size
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	}
}

// NewStdLogger logs to stdout with DefaultConfig.
func NewStdLogger() (ports.Logger, error) {
	return NewCustomStdLogger(DefaultConfig(os.Stdout))
}

// NewCustomStdLogger builds an l.Logger from config. The returned logger
// owns it and closes it on Close.
func NewCustomStdLogger(config l.Config) (ports.Logger, error) {
	logger, err := l.NewStandardFactory().CreateLogger(config)
	if err != nil {
		return nil, err
	}
	return &StdLogger{logger: logger}, nil
}

func (s *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	s.logger.Debug(msg, keysAndValues...)
}

func (s *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	s.logger.Info(msg, keysAndValues...)
}

func (s *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	s.logger.Warn(msg, keysAndValues...)
}

func (s *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	s.logger.Error(msg, keysAndValues...)
}

// Close flushes pending async writes and releases the l.Logger.
func (s *StdLogger) Close() error {
	return s.logger.Close()
}

// FromExisting wraps a caller's l.Logger. Closing the wrapper closes the
// wrapped logger; a nil logger yields Nop.
func FromExisting(logger l.Logger) ports.Logger {
	if logger == nil {
		return Nop()
	}
	return &StdLogger{logger: logger}
}
