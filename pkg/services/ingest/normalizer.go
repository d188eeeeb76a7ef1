// Package ingest parses raw trip log uploads into typed records.
//
// Structural problems (no input at all, missing required columns) fail the
// whole batch before any row is processed. Per-cell problems never do: an
// unparsable date becomes an unknown date, a blank or non-numeric
// measurement becomes "no value", and the row is kept either way.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/fleet-audit/pkg/models/domain"
)

// Required input columns, case- and spelling-exact.
const (
	ColZone           = "Zone"
	ColHub            = "Hub"
	ColVehicle        = "Vehicle Number"
	ColCreationDate   = "Order Creation Date"
	ColStartOdometer  = "Manual Start Odometer (in meters)"
	ColEndOdometer    = "Manual End Odometer (in meters)"
	ColGPSAvailable   = "GPS Available"
	ColGPSDistance    = "Trip GPS Distance Travelled (in KM)"
	ColManualDistance = "Manual Distance Travelled (in KM)"
)

var requiredColumns = []string{
	ColZone,
	ColHub,
	ColVehicle,
	ColCreationDate,
	ColStartOdometer,
	ColEndOdometer,
	ColGPSAvailable,
	ColGPSDistance,
	ColManualDistance,
}

// ErrEmptyInput indicates an upload with no header row at all.
var ErrEmptyInput = errors.New("ingest: input contains no header row")

// MissingColumnsError indicates a header that lacks one or more required
// columns. The core never guesses substitute columns.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("ingest: input is missing required columns: %s", strings.Join(e.Columns, ", "))
}

// Date layouts accepted for the creation date cell, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	time.RFC3339,
}

// ParseTrips reads a CSV trip log and returns one TripRecord per data row,
// order preserving. Extra columns are ignored.
func ParseTrips(r io.Reader) ([]domain.TripRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("ingest: read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	var records []domain.TripRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: read row: %w", err)
		}
		records = append(records, normalizeRow(row, idx))
	}

	return records, nil
}

func normalizeRow(row []string, idx map[string]int) domain.TripRecord {
	return domain.TripRecord{
		Zone:                cell(row, idx, ColZone),
		Hub:                 cell(row, idx, ColHub),
		VehicleID:           cell(row, idx, ColVehicle),
		CreatedAt:           parseDate(cell(row, idx, ColCreationDate)),
		ManualStartOdometer: parseMeasurement(cell(row, idx, ColStartOdometer)),
		ManualEndOdometer:   parseMeasurement(cell(row, idx, ColEndOdometer)),
		GPSAvailable:        cell(row, idx, ColGPSAvailable),
		TripGPSDistanceKM:   parseMeasurement(cell(row, idx, ColGPSDistance)),
		ManualDistanceKM:    parseMeasurement(cell(row, idx, ColManualDistance)),
	}
}

// cell tolerates short rows; a column beyond the row's length reads as empty.
func cell(row []string, idx map[string]int, col string) string {
	i := idx[col]
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseDate(s string) domain.TripDate {
	if s == "" {
		return domain.TripDate{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.DateOf(t)
		}
	}
	return domain.TripDate{}
}

func parseMeasurement(s string) domain.Measurement {
	if s == "" {
		return domain.Measurement{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return domain.Measurement{}
	}
	return domain.MeasurementOf(v)
}
