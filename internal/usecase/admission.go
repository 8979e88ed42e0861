package usecase

import (
	"context"
	"strings"

	"github.com/Gunvolt24/flights/internal/domain"
	"github.com/Gunvolt24/flights/pkg/document"
	"github.com/Gunvolt24/flights/pkg/metrics"
	"github.com/Gunvolt24/flights/pkg/validate"
)

// check — одна проверка упорядоченного конвейера: условие и отказ при его нарушении.
type check struct {
	ok     func() bool
	reject domain.Rejection
}

// firstFailure — отказ первой непройденной проверки; nil, если пройдены все.
func firstFailure(checks []check) *domain.Rejection {
	for _, c := range checks {
		if !c.ok() {
			r := c.reject
			return &r
		}
	}
	return nil
}

// BuildCheckpoint — Checkpoint из узла departure/arrival.
// Порядок: наличие airport и time, формат кода, формат времени; одно предупреждение на отказ.
// Для отсутствующего узла — отказ без лога.
func (p *FlightParser) BuildCheckpoint(ctx context.Context, node *document.Node) (domain.Checkpoint, bool) {
	if node == nil {
		return domain.Checkpoint{}, false
	}

	code, hasCode := node.FindText("airport")
	ts, hasTime := node.FindText("time")

	rejection := firstFailure([]check{
		{
			ok:     func() bool { return hasCode && hasTime },
			reject: domain.Rejection{Reason: domain.ReasonMissingFields, Detail: missingFields(hasCode, hasTime)},
		},
		{
			ok:     func() bool { return validate.ValidateAirportCode(code) },
			reject: domain.Rejection{Reason: domain.ReasonInvalidAirport, Detail: code},
		},
		{
			ok:     func() bool { return validate.ValidateISOTime(ts) },
			reject: domain.Rejection{Reason: domain.ReasonInvalidTime, Detail: ts},
		},
	})
	if rejection != nil {
		p.reject(ctx, *rejection)
		return domain.Checkpoint{}, false
	}
	return domain.Checkpoint{Code: code, Time: ts}, true
}

// admit — приём одного узла flight. Checkpoint'ы строятся до проверок,
// поэтому их предупреждения пишутся даже при отсутствии номера.
func (p *FlightParser) admit(ctx context.Context, node *document.Node) (domain.Flight, *domain.Rejection) {
	number, hasNumber := node.FindText("number")
	aircraft, _ := node.FindText("aircraft")
	status, hasStatus := node.FindText("status")

	origin, originOK := p.BuildCheckpoint(ctx, node.Find("departure"))
	destination, destinationOK := p.BuildCheckpoint(ctx, node.Find("arrival"))

	rejection := firstFailure([]check{
		{
			ok:     func() bool { return hasNumber },
			reject: domain.Rejection{Reason: domain.ReasonMissingNumber},
		},
		{
			ok:     func() bool { return originOK && destinationOK },
			reject: domain.Rejection{Reason: domain.ReasonBadCheckpoint, Detail: number},
		},
		{
			ok:     func() bool { return validate.ValidateFlightNumber(number) },
			reject: domain.Rejection{Reason: domain.ReasonInvalidNumber, Detail: number},
		},
		{
			ok:     func() bool { return hasStatus },
			reject: domain.Rejection{Reason: domain.ReasonMissingStatus},
		},
	})
	if rejection != nil {
		p.reject(ctx, *rejection)
		return domain.Flight{}, rejection
	}

	return domain.Flight{
		FlightNumber: number,
		Aircraft:     aircraft,
		Status:       status,
		Origin:       origin,
		Destination:  destination,
	}, nil
}

func (p *FlightParser) reject(ctx context.Context, r domain.Rejection) {
	metrics.Rejections.WithLabelValues(string(r.Reason)).Inc()
	p.log.Warnf(ctx, "%s", r.Message())
}

func missingFields(hasCode, hasTime bool) string {
	var missing []string
	if !hasCode {
		missing = append(missing, "airport")
	}
	if !hasTime {
		missing = append(missing, "time")
	}
	return strings.Join(missing, ", ")
}
