package usecase

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/Gunvolt24/flights/internal/domain"
	"github.com/Gunvolt24/flights/pkg/document"
	"github.com/Gunvolt24/flights/pkg/metrics"
)

// admitSafely — admit с восстановлением после паники: запись отбрасывается
// с логом уровня error, разбор продолжается со следующего узла.
func (p *FlightParser) admitSafely(ctx context.Context, idx int, node *document.Node) (flight domain.Flight, rejection *domain.Rejection) {
	defer func() {
		if r := recover(); r != nil {
			rejection = &domain.Rejection{
				Reason: domain.ReasonProcessingFailure,
				Detail: fmt.Sprintf("flight #%d: %v", idx+1, r),
			}
			metrics.Rejections.WithLabelValues(string(rejection.Reason)).Inc()
			p.log.Errorf(ctx, "%s\n%s", rejection.Message(), debug.Stack())
			flight = domain.Flight{}
		}
	}()

	return p.admit(ctx, node)
}
