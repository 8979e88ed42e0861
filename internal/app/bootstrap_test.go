package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gunvolt24/flights/config"
	"github.com/Gunvolt24/flights/internal/app"
	"github.com/Gunvolt24/flights/internal/domain"
	"github.com/Gunvolt24/flights/internal/ports/mocks"
	"github.com/Gunvolt24/flights/internal/usecase"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// логгер-заглушка
type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func twoFlights() domain.Report {
	return domain.Report{
		Flights: []domain.Flight{
			{
				FlightNumber: "LH456",
				Aircraft:     "A320",
				Status:       "delayed",
				Origin:       domain.Checkpoint{Code: "EDDF", Time: "2025-04-05T09:30:00Z"},
				Destination:  domain.Checkpoint{Code: "LFPG", Time: "2025-04-05T11:10:00Z"},
			},
			{
				FlightNumber: "AF789",
				Aircraft:     "A319",
				Status:       "scheduled",
				Origin:       domain.Checkpoint{Code: "LFPG", Time: "2025-04-05T14:45:00Z"},
				Destination:  domain.Checkpoint{Code: "LEMD", Time: "2025-04-05T17:00:00Z"},
			},
		},
		Total:    3,
		Rejected: 1,
	}
}

func TestAppRun_TextOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	parser := mocks.NewMockFlightParser(ctrl)
	parser.EXPECT().ParseReport(gomock.Any(), "flights.xml").Return(twoFlights(), nil)

	a := &app.App{Logger: nopLogger{}, Parser: parser, OutputFormat: app.OutputText}

	var out bytes.Buffer
	summary, err := a.Run(context.Background(), "flights.xml", &out)
	require.NoError(t, err)
	require.Equal(t, "2 valid / 1 invalid", summary)

	want := "Found 2 valid flights:\n" +
		"Flight LH456, Status: delayed, Aircraft: A320\n" +
		"  Departure: EDDF at 2025-04-05T09:30:00Z\n" +
		"  Arrival: LFPG at 2025-04-05T11:10:00Z\n\n" +
		"Flight AF789, Status: scheduled, Aircraft: A319\n" +
		"  Departure: LFPG at 2025-04-05T14:45:00Z\n" +
		"  Arrival: LEMD at 2025-04-05T17:00:00Z\n\n"
	require.Equal(t, want, out.String())
}

func TestAppRun_StatusFilterJSONL(t *testing.T) {
	ctrl := gomock.NewController(t)
	parser := mocks.NewMockFlightParser(ctrl)
	parser.EXPECT().ParseReport(gomock.Any(), "flights.xml").Return(twoFlights(), nil)

	a := &app.App{Logger: nopLogger{}, Parser: parser, OutputFormat: app.OutputJSONL, Status: "delayed"}

	var out bytes.Buffer
	_, err := a.Run(context.Background(), "flights.xml", &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)

	var got domain.Flight
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &got))
	require.Equal(t, twoFlights().Flights[0], got)
}

func TestAppRun_SourceErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	parser := mocks.NewMockFlightParser(ctrl)
	parser.EXPECT().ParseReport(gomock.Any(), "missing.xml").Return(domain.Report{}, usecase.ErrSourceNotFound)

	a := &app.App{Logger: nopLogger{}, Parser: parser, OutputFormat: app.OutputText}

	var out bytes.Buffer
	_, err := a.Run(context.Background(), "missing.xml", &out)
	require.True(t, errors.Is(err, usecase.ErrSourceNotFound))
	require.Empty(t, out.String())
}

func TestAppRun_WritesMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	parser := mocks.NewMockFlightParser(ctrl)
	parser.EXPECT().ParseReport(gomock.Any(), gomock.Any()).Return(domain.Report{Flights: []domain.Flight{}}, nil)

	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_runs_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	var out, diag bytes.Buffer
	a := &app.App{Logger: nopLogger{}, Parser: parser, OutputFormat: app.OutputText, Metrics: reg, Diag: &diag}

	_, err := a.Run(context.Background(), "flights.xml", &out)
	require.NoError(t, err)
	require.Equal(t, "Found 0 valid flights:\n", out.String())
	require.Contains(t, diag.String(), "test_runs_total 1")
}

func TestBootstrap_EndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flights.json")
	raw := `{"flights": {"flight": [
		{"number": "LH456", "aircraft": "A320",
		 "departure": {"airport": "EDDF", "time": "2025-04-05T09:30:00Z"},
		 "arrival": {"airport": "LFPG", "time": "2025-04-05T11:10:00Z"},
		 "status": "delayed"},
		{"number": "AF789",
		 "departure": {"airport": "LFPG", "time": "2025-04-05T14:45:00Z"},
		 "arrival": {"airport": "LEMD", "time": "2025-04-05T17:00:00Z"}}
	]}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg := &config.Config{
		Input:  config.Input{Format: "auto"},
		Output: config.Output{Format: "jsonl"},
	}

	var diag bytes.Buffer
	a, cleanup, err := app.Bootstrap(context.Background(), cfg, &diag)
	require.NoError(t, err)
	defer cleanup()

	var out bytes.Buffer
	summary, err := a.Run(context.Background(), path, &out)
	require.NoError(t, err)
	require.Equal(t, "1 valid / 1 invalid", summary)
	require.Contains(t, out.String(), `"flight_number":"LH456"`)
	require.NotContains(t, out.String(), "AF789")
}

func TestBootstrap_UnsupportedOutput(t *testing.T) {
	cfg := &config.Config{Output: config.Output{Format: "xml"}}

	_, cleanup, err := app.Bootstrap(context.Background(), cfg, &bytes.Buffer{})
	defer cleanup()
	require.ErrorIs(t, err, app.ErrUnsupportedOutput)
}
