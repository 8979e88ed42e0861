package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/flights/config"
	"github.com/Gunvolt24/flights/internal/ports"
	"github.com/Gunvolt24/flights/internal/usecase"
	"github.com/Gunvolt24/flights/pkg/document"
	"github.com/Gunvolt24/flights/pkg/logger"
	"github.com/Gunvolt24/flights/pkg/metrics"
	"github.com/Gunvolt24/flights/pkg/telemetry"
	"github.com/prometheus/client_golang/prometheus"
)

// ErrUnsupportedOutput — неизвестный формат вывода.
var ErrUnsupportedOutput = errors.New("unsupported output format")

// App — собранное CLI-приложение: парсер, логгер и настройки вывода.
type App struct {
	Logger       ports.Logger        // логгер
	Parser       ports.FlightParser  // разбор источника
	OutputFormat OutputFormat        // text|jsonl
	Status       string              // фильтр по статусу; пусто — без фильтра
	Metrics      prometheus.Gatherer // если задан — метрики пишутся в Diag после разбора
	Diag         io.Writer           // поток диагностики (метрики, спаны)
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
// diag — куда писать метрики и спаны (обычно stderr).
func Bootstrap(ctx context.Context, cfg *config.Config, diag io.Writer) (*App, Cleanup, error) {
	output, err := parseOutputFormat(cfg.Output.Format)
	if err != nil {
		return nil, func() {}, err
	}

	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(cfg.Tracing.ServiceName, diag, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	parser := usecase.NewFlightParser(logg, usecase.WithFormat(document.InputFormat(cfg.Input.Format)))

	app := &App{
		Logger:       logg,
		Parser:       parser,
		OutputFormat: output,
		Status:       cfg.Output.Status,
		Diag:         diag,
	}
	if cfg.Metrics.Dump {
		app.Metrics = prometheus.DefaultGatherer
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		// Sync для stderr/stdout может вернуть EINVAL — не считаем это ошибкой.
		_ = cleanupLogger()
	}

	return app, cleanup, nil
}

// Run — разбирает источник, применяет фильтр статуса и печатает рейсы в out.
// Возвращает сводку "N valid / M invalid" и ошибку только для недоступного источника/вывода.
func (a *App) Run(ctx context.Context, path string, out io.Writer) (string, error) {
	report, err := a.Parser.ParseReport(ctx, path)
	if err != nil {
		return "", err
	}

	flights := report.Flights
	if a.Status != "" {
		flights = usecase.FilterByStatus(flights, a.Status)
		a.Logger.Infof(ctx, "status filter %q kept %d of %d flights", a.Status, len(flights), len(report.Flights))
	}

	if err := Render(out, a.OutputFormat, flights); err != nil {
		return report.Summary(), err
	}

	if a.Metrics != nil && a.Diag != nil {
		if err := metrics.WriteText(a.Diag, a.Metrics); err != nil {
			a.Logger.Warnf(ctx, "write metrics: %v", err)
		}
	}
	return report.Summary(), nil
}

func parseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "", OutputText:
		return OutputText, nil
	case OutputJSONL:
		return OutputJSONL, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedOutput, s)
	}
}
