package xzap

import (
	"context"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var (
	global *zap.Logger
	once   sync.Once
)

// SetUp builds the process-wide logger. mode "prod" switches to the JSON
// encoder and drops debug output.
func SetUp(mode string) *zap.Logger {
	once.Do(func() {
		var cfg zap.Config
		if mode == "prod" {
			cfg = zap.NewProductionConfig()
		} else {
			cfg = zap.NewDevelopmentConfig()
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		logger, err := cfg.Build(zap.AddCallerSkip(1))
		if err != nil {
			logger = zap.New(zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(os.Stderr),
				zapcore.InfoLevel,
			))
		}
		global = logger
	})
	return global
}

// WithContext returns the logger bound to ctx, or the global one.
func WithContext(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok {
			return l
		}
	}
	if global == nil {
		return SetUp("dev")
	}
	return global
}

// NewContext stores a request-scoped logger on ctx.
func NewContext(ctx context.Context, fields ...zap.Field) context.Context {
	return context.WithValue(ctx, ctxKey{}, WithContext(ctx).With(fields...))
}
