package ports

import (
	"context"

	"github.com/Gunvolt24/flights/internal/domain"
)

// FlightParser — разбор источника с рейсами.
type FlightParser interface {
	// ParseSource — принятые рейсы в порядке документа; ошибка только для недоступного источника.
	ParseSource(ctx context.Context, path string) ([]domain.Flight, error)
	// ParseReport — то же, плюс статистика отказов.
	ParseReport(ctx context.Context, path string) (domain.Report, error)
}
