package domain

import "fmt"

// RejectReason — вид отказа в приёме записи.
type RejectReason string

const (
	// причины уровня checkpoint
	ReasonMissingFields  RejectReason = "missing_fields"
	ReasonInvalidAirport RejectReason = "invalid_airport_code"
	ReasonInvalidTime    RejectReason = "invalid_time"

	// причины уровня рейса
	ReasonMissingNumber     RejectReason = "missing_flight_number"
	ReasonBadCheckpoint     RejectReason = "bad_checkpoint"
	ReasonInvalidNumber     RejectReason = "invalid_flight_number"
	ReasonMissingStatus     RejectReason = "missing_status"
	ReasonProcessingFailure RejectReason = "processing_failure"
)

// Rejection — результат упорядоченной проверки: вид отказа и необязательная деталь
// (имя поля, невалидное значение, номер рейса).
type Rejection struct {
	Reason RejectReason
	Detail string
}

// Message — текст предупреждения для лога.
func (r Rejection) Message() string {
	switch r.Reason {
	case ReasonMissingFields:
		return "airport element missing required fields: " + r.Detail
	case ReasonInvalidAirport:
		return "invalid airport code: " + r.Detail
	case ReasonInvalidTime:
		return "invalid time format: " + r.Detail
	case ReasonMissingNumber:
		return "flight element missing flight number"
	case ReasonBadCheckpoint:
		return "failed to parse origin or destination for flight " + r.Detail
	case ReasonInvalidNumber:
		return "invalid flight number format: " + r.Detail
	case ReasonMissingStatus:
		return "flight element missing status"
	case ReasonProcessingFailure:
		return "error processing flight element: " + r.Detail
	default:
		return fmt.Sprintf("%s: %s", r.Reason, r.Detail)
	}
}
