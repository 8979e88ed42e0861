// Пакет ctxmeta — нейтральный слой для метаданных разбора, которые
// прокидываются через context.Context (путь источника, run_id, trace_id).
// Идея: парсер и логгер зависят от небольшого общего пакета, но не друг от друга.
package ctxmeta

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

type ctxKey string

const (
	// Ключи контекста (неэкспортируемые типы — чтобы избежать коллизий).
	KeySource ctxKey = "source"
	KeyRunID  ctxKey = "run_id"
)

// WithSource кладёт путь источника в контекст (если пусто — ничего не делает).
func WithSource(ctx context.Context, source string) context.Context {
	if ctx == nil || source == "" {
		return ctx
	}
	return context.WithValue(ctx, KeySource, source)
}

// SourceFromContext достаёт путь источника из контекста.
func SourceFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeySource).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithRunID кладёт идентификатор прогона разбора в контекст (если пусто — ничего не делает).
func WithRunID(ctx context.Context, runID string) context.Context {
	if ctx == nil || runID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRunID, runID)
}

// RunIDFromContext достаёт идентификатор прогона из контекста.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRunID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// TraceIDFromContext — trace_id активного спана для логов.
func TraceIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return "", false
	}
	return sc.TraceID().String(), true
}

// SpanIDFromContext — span_id активного спана.
func SpanIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return "", false
	}
	return sc.SpanID().String(), true
}
