// Package logging provides the structured logger shared by the CLI and the
// rename engine.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Level selects how chatty a Logger is.
type Level int

const (
	LevelNormal Level = iota
	LevelVerbose
	LevelQuiet
)

// Logger wraps zerolog with the CLI's console formatting.
type Logger struct {
	zlog   zerolog.Logger
	output io.Writer
	color  bool
}

// New creates a console logger writing to w. Progress bars own stdout, so
// the CLI passes stderr here.
func New(w io.Writer, level Level, color bool) *Logger {
	l := &Logger{color: color}
	l.SetOutput(w)
	l.SetLevel(level)
	return l
}

// NewDefault creates a logger on stderr at the normal level.
func NewDefault() *Logger {
	return New(os.Stderr, LevelNormal, true)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zlog: zerolog.Nop(), output: io.Discard}
}

// SetOutput changes the output writer, keeping level and formatting.
func (l *Logger) SetOutput(w io.Writer) {
	level := l.zlog.GetLevel()
	l.output = w
	l.zlog = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    !l.color,
	}).Level(level).With().Timestamp().Logger()
}

// SetLevel maps a CLI verbosity onto a zerolog level.
func (l *Logger) SetLevel(level Level) {
	switch level {
	case LevelVerbose:
		l.zlog = l.zlog.Level(zerolog.DebugLevel)
	case LevelQuiet:
		l.zlog = l.zlog.Level(zerolog.ErrorLevel)
	default:
		l.zlog = l.zlog.Level(zerolog.InfoLevel)
	}
}

// Output returns the current output writer.
func (l *Logger) Output() io.Writer {
	return l.output
}

// Debug returns a debug level event.
func (l *Logger) Debug() *zerolog.Event {
	return l.zlog.Debug()
}

// Info returns an info level event.
func (l *Logger) Info() *zerolog.Event {
	return l.zlog.Info()
}

// Warn returns a warn level event.
func (l *Logger) Warn() *zerolog.Event {
	return l.zlog.Warn()
}

// Error returns an error level event.
func (l *Logger) Error() *zerolog.Event {
	return l.zlog.Error()
}

// With creates a child context for additional fields.
func (l *Logger) With() zerolog.Context {
	return l.zlog.With()
}

// Debugf logs a debug message with printf-style formatting.
// It is only shown in verbose mode.
func (l *Logger) Debugf(format string, args ...any) {
	l.zlog.Debug().Msgf(format, args...)
}

// Infof logs an info message with printf-style formatting.
func (l *Logger) Infof(format string, args ...any) {
	l.zlog.Info().Msgf(format, args...)
}

// Warnf logs a warning with printf-style formatting.
func (l *Logger) Warnf(format string, args ...any) {
	l.zlog.Warn().Msgf(format, args...)
}

// Errorf logs an error message with printf-style formatting.
func (l *Logger) Errorf(format string, args ...any) {
	l.zlog.Error().Msgf(format, args...)
}
