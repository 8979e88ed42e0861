package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/flights/internal/domain"
)

// OutputFormat допустимые значения.
type OutputFormat string

const (
	OutputText  OutputFormat = "text"
	OutputJSONL OutputFormat = "jsonl"
)

// Render — печать рейсов: text для консоли или канонический JSON по строке на рейс.
func Render(w io.Writer, format OutputFormat, flights []domain.Flight) error {
	switch format {
	case OutputJSONL:
		for i := range flights {
			line, err := json.Marshal(&flights[i])
			if err != nil {
				return fmt.Errorf("marshal flight %s: %w", flights[i].FlightNumber, err)
			}
			if _, err := w.Write(append(line, '\n')); err != nil {
				return fmt.Errorf("write jsonl: %w", err)
			}
		}
		return nil
	case OutputText:
		return renderText(w, flights)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedOutput, format)
	}
}

func renderText(w io.Writer, flights []domain.Flight) error {
	if _, err := fmt.Fprintf(w, "Found %d valid flights:\n", len(flights)); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	for _, f := range flights {
		_, err := fmt.Fprintf(w,
			"Flight %s, Status: %s, Aircraft: %s\n  Departure: %s at %s\n  Arrival: %s at %s\n\n",
			f.FlightNumber, f.Status, f.Aircraft,
			f.Origin.Code, f.Origin.Time,
			f.Destination.Code, f.Destination.Time,
		)
		if err != nil {
			return fmt.Errorf("write text: %w", err)
		}
	}
	return nil
}
