// Package logger provides the prefixed, colored component loggers used across
// the service.
package logger

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

const colorReset = "\033[0m"

var (
	ErrEmptyPrefix = errors.New("logger prefix is empty")
	ErrNilWriter   = errors.New("logger writer is nil")
)

// Logger writes leveled lines tagged with a component name.
type Logger struct {
	zl zerolog.Logger
}

// New creates a logger whose lines start with prefix painted in color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if w == nil {
		return nil, ErrNilWriter
	}

	tag := "[" + prefix + "]"
	if color != "" {
		tag = color + tag + colorReset
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    color == "",
		FormatMessage: func(i interface{}) string {
			return fmt.Sprintf("%s %v", tag, i)
		},
	}

	return &Logger{
		zl: zerolog.New(output).With().Timestamp().Str("component", prefix).Logger(),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.zl.Info().Msg(msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.zl.Warn().Msg(msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.zl.Error().Msg(msg)
}
