package ports

import "context"

// Logger — минимальный контракт логгера (диагностический поток ядра).
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)  // Infof — информационные сообщения.
	Warnf(ctx context.Context, format string, args ...any)  // Warnf — предупреждения (отброшенные записи).
	Errorf(ctx context.Context, format string, args ...any) // Errorf — ошибки.
}
