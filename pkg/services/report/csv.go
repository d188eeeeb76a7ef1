package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/de-tools/fleet-audit/pkg/models/domain"
)

// Output column order matches the report consumed by fleet operations.
var csvHeader = []string{"Zone", "Hub", "Vehicle Number", "Date", "Risk Factors", "Reasoning", "Risk Value"}

const (
	dateSeparator = ", "
	listSeparator = "; "
)

// CSVReporter renders aggregated risk rows as a CSV byte stream suitable for
// direct download. Fields containing delimiters or quotes are escaped per
// standard CSV quoting.
type CSVReporter struct {
	writer io.Writer
}

func NewCSVReporter(writer io.Writer) *CSVReporter {
	return &CSVReporter{writer: writer}
}

func (c *CSVReporter) Handle(report *domain.RiskReport) error {
	w := csv.NewWriter(c.writer)

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("report: write csv header: %w", err)
	}

	for _, row := range report.Summaries {
		record := []string{
			row.Zone,
			row.Hub,
			row.VehicleID,
			strings.Join(row.Dates, dateSeparator),
			strings.Join(row.Categories, listSeparator),
			strings.Join(row.Reasons, listSeparator),
			strconv.Itoa(row.TotalScore),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("report: write csv row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
