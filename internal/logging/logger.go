package logging

import (
	"context"
	"io"
	"maps"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the structured logger.
type Options struct {
	ServiceName string
	// Level is a zerolog level name; empty or unknown means info.
	Level string
	// Format is "json" or "console".
	Format     string
	Output     io.Writer
	BufferSize int
	Now        func() time.Time
}

// Logger writes structured logs through zerolog and keeps the most recent
// entries in its Buffer so they can be listed or exported over HTTP.
type Logger struct {
	base   *zerolog.Logger
	buffer *Buffer
	level  zerolog.Level
	now    func() time.Time
}

type ctxKey struct{}

func New(opts Options) *Logger {
	level := ParseLevel(opts.Level)
	if opts.Now == nil {
		opts.Now = time.Now
	}

	var output io.Writer = opts.Output
	if output == nil {
		output = os.Stdout
	}
	if strings.EqualFold(opts.Format, "console") {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: "15:04:05",
		}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	logger := zerolog.
		New(output).
		With().
		Timestamp().
		Str("service", opts.ServiceName).
		Logger().
		Level(level)

	return &Logger{
		base:   &logger,
		buffer: NewBuffer(opts.BufferSize),
		level:  level,
		now:    opts.Now,
	}
}

// Nop returns a logger that discards output. Its buffer still records.
func Nop() *Logger {
	return New(Options{ServiceName: "nop", Output: io.Discard})
}

func ParseLevel(value string) zerolog.Level {
	levelString := strings.ToLower(strings.TrimSpace(value))
	if levelString == "" {
		return zerolog.InfoLevel
	}
	if lvl, err := zerolog.ParseLevel(levelString); err == nil && lvl != zerolog.NoLevel {
		return lvl
	}
	return zerolog.InfoLevel
}

func (l *Logger) Buffer() *Buffer {
	return l.buffer
}

// Zerolog exposes the base logger for libraries that want one.
func (l *Logger) Zerolog() *zerolog.Logger {
	return l.base
}

func (l *Logger) loggerFromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return l.base
	}
	if entry, ok := ctx.Value(ctxKey{}).(*zerolog.Logger); ok {
		return entry
	}
	return l.base
}

func (l *Logger) WithField(ctx context.Context, key string, value any) context.Context {
	entry := l.loggerFromContext(ctx).With().Interface(key, value).Logger()
	return context.WithValue(ctx, ctxKey{}, &entry)
}

func (l *Logger) WithRequestID(ctx context.Context, requestID string) context.Context {
	return l.WithField(ctx, "request_id", requestID)
}

func (l *Logger) Debug(ctx context.Context, module, msg string, data map[string]any) {
	l.log(ctx, zerolog.DebugLevel, module, msg, nil, data)
}

func (l *Logger) Info(ctx context.Context, module, msg string, data map[string]any) {
	l.log(ctx, zerolog.InfoLevel, module, msg, nil, data)
}

func (l *Logger) Warn(ctx context.Context, module, msg string, data map[string]any) {
	l.log(ctx, zerolog.WarnLevel, module, msg, nil, data)
}

func (l *Logger) Error(ctx context.Context, module, msg string, err error, data map[string]any) {
	l.log(ctx, zerolog.ErrorLevel, module, msg, err, data)
}

func (l *Logger) log(ctx context.Context, lvl zerolog.Level, module, msg string, err error, data map[string]any) {
	if lvl < l.level {
		return
	}

	event := l.loggerFromContext(ctx).WithLevel(lvl)
	if module != "" {
		event = event.Str("module", module)
	}
	if len(data) > 0 {
		event = event.Fields(data)
	}
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)

	entry := Entry{
		Timestamp: l.now(),
		Level:     levelOf(lvl),
		Module:    module,
		Message:   msg,
	}
	if len(data) > 0 {
		entry.Data = maps.Clone(data)
	}
	if err != nil {
		entry.Error = err.Error()
	}
	l.buffer.Add(entry)
}

// WithOperation logs around fn and returns its error unchanged.
func (l *Logger) WithOperation(ctx context.Context, module, operation string, fn func(context.Context) error) error {
	l.Debug(ctx, module, "starting "+operation, nil)
	started := l.now()

	if err := fn(ctx); err != nil {
		l.Error(ctx, module, operation+" failed", err, nil)
		return err
	}

	l.Debug(ctx, module, operation+" completed", map[string]any{
		"duration_ms": l.now().Sub(started).Milliseconds(),
	})
	return nil
}

// LogRequest writes an access log line. Access logs skip the buffer.
func (l *Logger) LogRequest(ctx context.Context, method, uri string, status int, latency time.Duration, err error) {
	lvl := zerolog.InfoLevel
	if status >= 500 {
		lvl = zerolog.ErrorLevel
	}
	event := l.loggerFromContext(ctx).WithLevel(lvl).
		Str("method", method).
		Str("uri", uri).
		Int("status", status).
		Dur("latency", latency)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg("request")
}

func levelOf(lvl zerolog.Level) Level {
	switch {
	case lvl >= zerolog.ErrorLevel:
		return LevelError
	case lvl == zerolog.WarnLevel:
		return LevelWarn
	case lvl == zerolog.InfoLevel:
		return LevelInfo
	default:
		return LevelDebug
	}
}
