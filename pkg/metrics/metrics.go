package metrics

import (
	"fmt"
	"io"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

var (
	// Documents — исходы разбора документа: parsed|malformed|not_found.
	Documents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flights_documents_total",
			Help: "Number of source documents by parse outcome",
		},
		[]string{"outcome"},
	)
	// Records — узлы flight: accepted|rejected.
	Records = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flights_records_total",
			Help: "Number of flight records by admission result",
		},
		[]string{"result"},
	)
	// Rejections — отказы по причинам (уровни рейса и checkpoint).
	Rejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flights_rejections_total",
			Help: "Number of rejected records and checkpoints by reason",
		},
		[]string{"reason"},
	)
)

var registerOnce sync.Once

// MustRegister регистрирует метрики в prometheus.DefaultRegisterer; повторные вызовы безопасны.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(Documents, Records, Rejections)
	})
}

// WriteText пишет метрики gatherer'а в текстовом формате экспозиции.
// HTTP-эндпоинта нет: CLI выводит метрики по флагу.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
