package logging

import (
	"context"
	"os"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

// MirrorFunc receives every record that passes the level check, in addition to
// the zap core. Observability exporters install one with SetMirror.
type MirrorFunc func(ctx context.Context, level Level, msg string, args ...any)

type Logger struct {
	zap    *zap.Logger
	args   []any
	closed atomic.Bool
}

var (
	defaultLogger atomic.Pointer[Logger]
	mirror        atomic.Pointer[MirrorFunc]
)

func init() {
	defaultLogger.Store(NewNop())
}

func NewJSON(level Level) *Logger {
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		level,
	)

	return FromZap(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2), zap.AddStacktrace(zapcore.ErrorLevel)))
}

func NewNop() *Logger {
	return FromZap(zap.NewNop())
}

func FromZap(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{zap: z}
}

func Default() *Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger
	}
	return NewNop()
}

func SetDefault(logger *Logger) {
	if logger == nil {
		logger = NewNop()
	}
	defaultLogger.Store(logger)
}

// SetMirror installs fn as the process-wide mirror. A nil fn removes it.
func SetMirror(fn MirrorFunc) {
	if fn == nil {
		mirror.Store(nil)
		return
	}
	mirror.Store(&fn)
}

func (l *Logger) Sync() error {
	if l == nil || l.zap == nil {
		return nil
	}
	if l.closed.CompareAndSwap(false, true) {
		return l.zap.Sync()
	}
	return nil
}

func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return NewNop()
	}
	merged := make([]any, 0, len(l.args)+len(args))
	merged = append(merged, l.args...)
	merged = append(merged, args...)
	return &Logger{
		zap:  l.zap.With(zapFields(args)...),
		args: merged,
	}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.logContext(nil, zap.DebugLevel, msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.logContext(nil, zap.InfoLevel, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.logContext(nil, zap.WarnLevel, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.logContext(nil, zap.ErrorLevel, msg, args...)
}

func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.logContext(ctx, zap.DebugLevel, msg, args...)
}

func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.logContext(ctx, zap.InfoLevel, msg, args...)
}

func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.logContext(ctx, zap.WarnLevel, msg, args...)
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.logContext(ctx, zap.ErrorLevel, msg, args...)
}

func (l *Logger) logContext(ctx context.Context, level zapcore.Level, msg string, args ...any) {
	logger := l
	if logger == nil {
		logger = Default()
	}
	ce := logger.zap.Check(level, msg)
	if ce == nil {
		return
	}

	fields := make([]zap.Field, 0, len(args)/2+2)
	fields = append(fields, zapFields(args)...)
	fields = append(fields, traceFields(ctx)...)
	ce.Write(fields...)

	if fn := mirror.Load(); fn != nil {
		if ctx == nil {
			ctx = context.Background()
		}
		all := make([]any, 0, len(logger.args)+len(args))
		all = append(all, logger.args...)
		all = append(all, args...)
		(*fn)(ctx, level, msg, all...)
	}
}

func traceFields(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return nil
	}
	return []zap.Field{
		zap.String("trace_id", spanCtx.TraceID().String()),
		zap.String("span_id", spanCtx.SpanID().String()),
	}
}

func zapFields(args []any) []zap.Field {
	if len(args) == 0 {
		return nil
	}

	out := make([]zap.Field, 0, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || key == "" {
			key = "arg"
		}

		if i+1 >= len(args) {
			out = append(out, zap.Any(key, nil))
			break
		}

		value := args[i+1]
		if err, ok := value.(error); ok {
			out = append(out, zap.NamedError(key, err))
			continue
		}
		out = append(out, zap.Any(key, value))
	}

	return out
}
