package logger

import (
	"context"

	"github.com/Gunvolt24/flights/pkg/ctxmeta"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ZapLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if isProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, nil, err
	}

	loggerWrap := wrap(logger)

	cleanup := func() error { return loggerWrap.base.Sync() }
	return loggerWrap, cleanup, nil
}

// NewZapLoggerFromCore — логгер поверх готового ядра (тесты, observer).
func NewZapLoggerFromCore(core zapcore.Core) *ZapLogger {
	return wrap(zap.New(core))
}

func wrap(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{
		base:  logger,
		sugar: logger.Sugar(),
	}
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Errorf(format, args...)
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }

// withMeta добавляет source, run_id, trace_id и span_id из контекста, если они есть.
func (z *ZapLogger) withMeta(ctx context.Context) *zap.SugaredLogger {
	var fields []any
	if src, ok := ctxmeta.SourceFromContext(ctx); ok {
		fields = append(fields, "source", src)
	}
	if rid, ok := ctxmeta.RunIDFromContext(ctx); ok {
		fields = append(fields, "run_id", rid)
	}
	if tr, ok := ctxmeta.TraceIDFromContext(ctx); ok {
		fields = append(fields, "trace_id", tr)
	}
	if sp, ok := ctxmeta.SpanIDFromContext(ctx); ok {
		fields = append(fields, "span_id", sp)
	}
	if len(fields) == 0 {
		return z.sugar
	}
	return z.sugar.With(fields...)
}
