// Package analysis orchestrates the trip risk pipeline over one uploaded
// batch: normalize, sequence, evaluate, aggregate.
package analysis

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/de-tools/fleet-audit/pkg/models/domain"
	"github.com/de-tools/fleet-audit/pkg/services/ingest"
	"github.com/de-tools/fleet-audit/pkg/services/report"
	"github.com/de-tools/fleet-audit/pkg/services/risk"
	"github.com/de-tools/fleet-audit/pkg/services/sequence"
)

// Analyzer runs the full risk pipeline over one trip log.
type Analyzer interface {
	Analyze(ctx context.Context, input io.Reader) (*domain.RiskReport, error)
}

type analyzer struct{}

func NewAnalyzer() Analyzer {
	return &analyzer{}
}

// Analyze reads the input fully, runs each pipeline stage in order and
// returns the aggregated report. Structural input errors abort the batch
// before any per-row processing; per-cell problems never do.
func (a *analyzer) Analyze(ctx context.Context, input io.Reader) (*domain.RiskReport, error) {
	logger := zerolog.Ctx(ctx)
	batchID := uuid.NewString()

	records, err := ingest.ParseTrips(input)
	if err != nil {
		return nil, err
	}

	sequenced := sequence.AttachLookback(records)
	evaluated := risk.EvaluateAll(sequenced)

	flagged := 0
	for _, rec := range evaluated {
		if rec.Flagged() {
			flagged++
		}
	}

	summaries := report.Aggregate(evaluated)

	logger.Info().
		Str("batch_id", batchID).
		Int("rows_read", len(records)).
		Int("rows_flagged", flagged).
		Int("vehicles_flagged", len(summaries)).
		Msg("trip batch analyzed")

	return &domain.RiskReport{
		BatchID:     batchID,
		GeneratedAt: time.Now().UTC(),
		Summaries:   summaries,
		Stats: domain.RunStats{
			RowsRead:        len(records),
			RowsFlagged:     flagged,
			VehiclesFlagged: len(summaries),
		},
	}, nil
}
