package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures New. The zero value logs JSON at info level to stderr.
type Options struct {
	// Level is a zerolog level name such as "debug" or "warn".
	Level string
	// HumanReadable switches from JSON lines to the zerolog console format.
	HumanReadable bool
	Writer        io.Writer
	// Component, when set, is attached to every entry as "component".
	Component string
}

// Logger is the structured logger shared by the CLI and the studio. A nil
// *Logger discards everything, so collaborators never need a guard.
type Logger struct {
	base zerolog.Logger
}

func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	ctx := zerolog.New(output(opts)).Level(level).With().Timestamp()
	if opts.Component != "" {
		ctx = ctx.Str("component", opts.Component)
	}
	return &Logger{base: ctx.Logger()}, nil
}

// Nop discards every entry. Tests and optional collaborators use it.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

func parseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(name))
}

func output(opts Options) io.Writer {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if !opts.HumanReadable {
		return w
	}
	console := zerolog.NewConsoleWriter()
	console.Out = w
	console.TimeFormat = time.RFC3339
	return console
}

// WithFields derives a logger carrying every key in fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	ctx := l.base.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{base: ctx.Logger()}
}

// With derives a logger carrying one extra field.
func (l *Logger) With(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Interface(key, value).Logger()}
}

// event returns nil for a nil receiver; zerolog treats a nil event as a no-op.
func (l *Logger) event(level zerolog.Level) *zerolog.Event {
	if l == nil {
		return nil
	}
	return l.base.WithLevel(level)
}

func (l *Logger) Info(msg string)  { l.event(zerolog.InfoLevel).Msg(msg) }
func (l *Logger) Debug(msg string) { l.event(zerolog.DebugLevel).Msg(msg) }
func (l *Logger) Warn(msg string)  { l.event(zerolog.WarnLevel).Msg(msg) }

// Error logs msg at error level with err under the "error" key. A nil err
// logs msg alone.
func (l *Logger) Error(err error, msg string) {
	l.event(zerolog.ErrorLevel).Err(err).Msg(msg)
}
