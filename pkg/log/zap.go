package log

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig configures the zap backed Logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // "production" or anything else for development
	Encoding     string // "json" or "console"
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a Logger from cfg. Unknown levels fall back to info.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
		level = zapcore.InfoLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	if cfg.Mode == "production" {
		encCfg = zap.NewProductionEncoderConfig()
	}
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != "json" {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == "json" {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), zap.NewAtomicLevelAt(level))

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if cfg.Mode != "production" {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if id := RequestID(ctx); id != "" {
		return l.sugar.With("request_id", id)
	}
	return l.sugar
}

// Info style calls accept either plain values or a message followed by
// key/value pairs, e.g. Info(ctx, "cache hit", "key", k).
func (l *zapLogger) Debug(ctx context.Context, arg ...any) { l.log(ctx, zapcore.DebugLevel, arg) }
func (l *zapLogger) Info(ctx context.Context, arg ...any)  { l.log(ctx, zapcore.InfoLevel, arg) }
func (l *zapLogger) Warn(ctx context.Context, arg ...any)  { l.log(ctx, zapcore.WarnLevel, arg) }
func (l *zapLogger) Error(ctx context.Context, arg ...any) { l.log(ctx, zapcore.ErrorLevel, arg) }
func (l *zapLogger) DPanic(ctx context.Context, arg ...any) {
	l.log(ctx, zapcore.DPanicLevel, arg)
}
func (l *zapLogger) Panic(ctx context.Context, arg ...any) { l.log(ctx, zapcore.PanicLevel, arg) }
func (l *zapLogger) Fatal(ctx context.Context, arg ...any) { l.log(ctx, zapcore.FatalLevel, arg) }

func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Debugf(template, arg...)
}
func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Infof(template, arg...)
}
func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Warnf(template, arg...)
}
func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Errorf(template, arg...)
}
func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).DPanicf(template, arg...)
}
func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Panicf(template, arg...)
}
func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Fatalf(template, arg...)
}

func (l *zapLogger) log(ctx context.Context, level zapcore.Level, arg []any) {
	s := l.with(ctx)

	// message followed by an even number of key/value pairs
	if msg, ok := firstString(arg); ok && isKeyValues(arg[1:]) {
		kv := arg[1:]
		switch level {
		case zapcore.DebugLevel:
			s.Debugw(msg, kv...)
		case zapcore.InfoLevel:
			s.Infow(msg, kv...)
		case zapcore.WarnLevel:
			s.Warnw(msg, kv...)
		case zapcore.ErrorLevel:
			s.Errorw(msg, kv...)
		case zapcore.DPanicLevel:
			s.DPanicw(msg, kv...)
		case zapcore.PanicLevel:
			s.Panicw(msg, kv...)
		default:
			s.Fatalw(msg, kv...)
		}
		return
	}

	switch level {
	case zapcore.DebugLevel:
		s.Debug(arg...)
	case zapcore.InfoLevel:
		s.Info(arg...)
	case zapcore.WarnLevel:
		s.Warn(arg...)
	case zapcore.ErrorLevel:
		s.Error(arg...)
	case zapcore.DPanicLevel:
		s.DPanic(arg...)
	case zapcore.PanicLevel:
		s.Panic(arg...)
	default:
		s.Fatal(arg...)
	}
}

func isKeyValues(kv []any) bool {
	if len(kv) == 0 || len(kv)%2 != 0 {
		return false
	}
	for i := 0; i < len(kv); i += 2 {
		if _, ok := kv[i].(string); !ok {
			return false
		}
	}
	return true
}

func firstString(arg []any) (string, bool) {
	if len(arg) == 0 {
		return "", false
	}
	s, ok := arg[0].(string)
	return s, ok
}
