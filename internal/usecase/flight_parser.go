package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Gunvolt24/flights/internal/domain"
	"github.com/Gunvolt24/flights/internal/ports"
	"github.com/Gunvolt24/flights/pkg/ctxmeta"
	"github.com/Gunvolt24/flights/pkg/document"
	"github.com/Gunvolt24/flights/pkg/metrics"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Gunvolt24/flights/internal/usecase"

// Проверка, что FlightParser удовлетворяет интерфейсу FlightParser.
var _ ports.FlightParser = (*FlightParser)(nil)

// ErrSourceNotFound — источник не существует или не читается. Единственная ошибка,
// прерывающая разбор целиком.
var ErrSourceNotFound = errors.New("source not found")

// FlightParser — разбор источника с рейсами. Состояния между вызовами нет:
// логгер и трейсер — только зависимости.
type FlightParser struct {
	log    ports.Logger
	tracer trace.Tracer
	format document.InputFormat
}

// Option — настройка FlightParser.
type Option func(*FlightParser)

// WithFormat — формат документа (по умолчанию auto: по расширению).
func WithFormat(format document.InputFormat) Option {
	return func(p *FlightParser) { p.format = format }
}

// WithTracerProvider — провайдер трейсинга вместо глобального.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *FlightParser) { p.tracer = tp.Tracer(tracerName) }
}

// NewFlightParser — DI-конструктор.
func NewFlightParser(log ports.Logger, opts ...Option) *FlightParser {
	p := &FlightParser{
		log:    log,
		tracer: otel.Tracer(tracerName),
		format: document.FormatAuto,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseSource — принятые рейсы в порядке документа (никогда не nil).
// Ошибка только при недоступном источнике (ErrSourceNotFound) или неизвестном формате.
func (p *FlightParser) ParseSource(ctx context.Context, path string) ([]domain.Flight, error) {
	report, err := p.ParseReport(ctx, path)
	if err != nil {
		return nil, err
	}
	return report.Flights, nil
}

// ParseReport — разбор с подробной статистикой.
// Каждый вызов получает свой run_id (UUID) в контексте: по нему склеиваются логи одного прогона.
// Шаги:
//  1. открыть источник (нет файла —> ErrSourceNotFound);
//  2. разобрать документ целиком (битый документ —> лог ошибки и пустой результат);
//  3. для каждого узла flight на любой глубине — упорядоченные проверки приёма;
//     отказ логируется и не мешает следующим записям.
func (p *FlightParser) ParseReport(ctx context.Context, path string) (domain.Report, error) {
	runID := uuid.NewString()
	ctx = ctxmeta.WithSource(ctx, path)
	ctx = ctxmeta.WithRunID(ctx, runID)
	ctx, span := p.tracer.Start(ctx, "FlightParser.ParseReport",
		trace.WithAttributes(
			attribute.String("flights.source", path),
			attribute.String("flights.run_id", runID),
		))
	defer span.End()

	report := domain.Report{
		Flights: []domain.Flight{},
		Reasons: map[domain.RejectReason]int{},
	}

	format := document.Resolve(path, p.format)
	switch format {
	case document.FormatXML, document.FormatYAML, document.FormatJSON:
	default:
		err := fmt.Errorf("%w: %s", document.ErrUnsupportedFormat, format)
		span.SetStatus(codes.Error, err.Error())
		return report, err
	}

	file, err := openSource(path)
	if err != nil {
		metrics.Documents.WithLabelValues("not_found").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "source not found")
		return report, err
	}
	defer file.Close()

	root, err := document.Decode(file, format)
	if err != nil {
		metrics.Documents.WithLabelValues("malformed").Inc()
		span.RecordError(err)
		p.log.Errorf(ctx, "document parsing error: %v", err)
		return report, nil
	}
	metrics.Documents.WithLabelValues("parsed").Inc()

	nodes := root.Descendants("flight")
	report.Total = len(nodes)
	for i, node := range nodes {
		flight, rejection := p.admitSafely(ctx, i, node)
		if rejection != nil {
			report.Rejected++
			report.Reasons[rejection.Reason]++
			metrics.Records.WithLabelValues("rejected").Inc()
			continue
		}
		report.Flights = append(report.Flights, flight)
		metrics.Records.WithLabelValues("accepted").Inc()
	}

	span.SetAttributes(
		attribute.Int("flights.total", report.Total),
		attribute.Int("flights.accepted", len(report.Flights)),
		attribute.Int("flights.rejected", report.Rejected),
	)
	p.log.Infof(ctx, "ingestion finished: %s", report.Summary())
	return report, nil
}

// FilterByStatus — новый срез с рейсами, у которых статус совпадает точно (с учётом регистра).
// Порядок сохраняется, вход не меняется.
func FilterByStatus(flights []domain.Flight, status string) []domain.Flight {
	out := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if f.Status == status {
			out = append(out, f)
		}
	}
	return out
}

// ------вспомогательные функции------

// openSource открывает обычный файл или поток (например, /dev/stdin); каталоги не принимаются.
func openSource(path string) (*os.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceNotFound, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s: is a directory", ErrSourceNotFound, path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceNotFound, path, err)
	}
	return file, nil
}
