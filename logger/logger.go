package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey string

const (
	traceIDKey   ctxKey = "trace_id"
	requestIDKey ctxKey = "request_id"
)

type Logger struct {
	*zap.SugaredLogger
}

type Option func(*zap.Config)

// WithOutputPaths overrides the default stdout sink, for example to keep a
// CLI's stdout free for results.
func WithOutputPaths(paths ...string) Option {
	return func(cfg *zap.Config) {
		if len(paths) > 0 {
			cfg.OutputPaths = paths
		}
	}
}

// Init is New that exits the process when the logger cannot be built.
func Init(serviceName, env string, opts ...Option) *Logger {
	l, err := New(serviceName, env, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	return l
}

// New builds a named logger for env ("development", "debug", "production";
// anything else gets an info-level console logger).
func New(serviceName, env string, opts ...Option) (*Logger, error) {
	cfg, withCaller := buildConfig(env)
	for _, opt := range opts {
		opt(&cfg)
	}

	z, err := cfg.Build(zap.WithCaller(withCaller), zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("logger: build %q: %w", env, err)
	}
	return Wrap(z.Named(serviceName)), nil
}

// Wrap adopts an existing zap logger, e.g. one built on a test observer core.
func Wrap(z *zap.Logger) *Logger {
	return &Logger{SugaredLogger: z.Sugar()}
}

func Nop() *Logger { return Wrap(zap.NewNop()) }

// preset is the logging profile selected by APP_ENV.
type preset struct {
	dev        bool
	level      zapcore.Level
	stacktrace bool
	caller     bool
}

var presets = map[string]preset{
	"development": {dev: true, level: zap.DebugLevel},
	"debug":       {dev: true, level: zap.DebugLevel, stacktrace: true, caller: true},
	"production":  {level: zap.InfoLevel},
}

// fallbackPreset is used for unknown environments: readable console output
// without debug noise.
var fallbackPreset = preset{dev: true, level: zap.InfoLevel}

func buildConfig(env string) (zap.Config, bool) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(env))]
	if !ok {
		p = fallbackPreset
	}

	cfg := zap.NewProductionConfig()
	if p.dev {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(p.level)
	cfg.DisableStacktrace = !p.stacktrace
	cfg.OutputPaths = []string{"stdout"}

	enc := &cfg.EncoderConfig
	enc.TimeKey, enc.LevelKey, enc.MessageKey, enc.NameKey = "timestamp", "level", "msg", "logger"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.CallerKey = zapcore.OmitKey
	if p.caller {
		enc.CallerKey = "caller"
	}

	return cfg, p.caller
}

func (l *Logger) With(args ...any) LoggerInterface {
	return &Logger{SugaredLogger: l.SugaredLogger.With(args...)}
}

func (l *Logger) SafeSync() {
	if l == nil {
		return
	}
	if err := l.Desugar().Sync(); err != nil && !isIgnorableSyncError(err) {
		l.Errorf("log sync error: %v", err)
	}
}

// stdout/stderr on a terminal or pipe rejects fsync; that is not a failure.
func isIgnorableSyncError(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "invalid argument") ||
		strings.Contains(s, "inappropriate ioctl for device")
}

func (l *Logger) Debugw(m string, kv ...any) { l.SugaredLogger.Debugw(m, kv...) }
func (l *Logger) Infow(m string, kv ...any)  { l.SugaredLogger.Infow(m, kv...) }
func (l *Logger) Warnw(m string, kv ...any)  { l.SugaredLogger.Warnw(m, kv...) }
func (l *Logger) Errorw(m string, kv ...any) { l.SugaredLogger.Errorw(m, kv...) }

func (l *Logger) DebugwCtx(ctx context.Context, m string, kv ...any) {
	l.Debugw(m, withIDs(ctx, kv)...)
}

func (l *Logger) InfowCtx(ctx context.Context, m string, kv ...any) {
	l.Infow(m, withIDs(ctx, kv)...)
}

func (l *Logger) WarnwCtx(ctx context.Context, m string, kv ...any) {
	l.Warnw(m, withIDs(ctx, kv)...)
}

func (l *Logger) ErrorwCtx(ctx context.Context, m string, kv ...any) {
	l.Errorw(m, withIDs(ctx, kv)...)
}

// withIDs appends the trace and request ids carried by ctx.
func withIDs(ctx context.Context, kv []any) []any {
	if ctx == nil {
		return kv
	}
	for _, key := range []ctxKey{traceIDKey, requestIDKey} {
		if s, _ := ctx.Value(key).(string); s != "" {
			kv = append(kv, string(key), s)
		}
	}
	return kv
}

func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, traceIDKey, traceID)
}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	s, _ := ctx.Value(requestIDKey).(string)
	return s
}
