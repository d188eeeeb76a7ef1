package sequence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/fleet-audit/pkg/models/domain"
)

func tripOn(vehicle string, day int, endOdometer float64) domain.TripRecord {
	return domain.TripRecord{
		VehicleID:         vehicle,
		CreatedAt:         domain.DateOf(time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)),
		ManualEndOdometer: domain.MeasurementOf(endOdometer),
	}
}

func TestAttachLookback_ChronologicalPredecessor(t *testing.T) {
	// Input deliberately out of date order: D3, D1, D2.
	records := []domain.TripRecord{
		tripOn("V1", 3, 3000),
		tripOn("V1", 1, 1000),
		tripOn("V1", 2, 2000),
	}

	out := AttachLookback(records)
	require.Len(t, out, 3)

	// Output keeps input order, lookback reflects chronology.
	assert.Equal(t, domain.MeasurementOf(2000), out[0].PrevManualEndOdometer, "D3 looks back to D2, not D1")
	assert.False(t, out[1].PrevManualEndOdometer.Valid, "D1 is the vehicle's first record")
	assert.Equal(t, domain.MeasurementOf(1000), out[2].PrevManualEndOdometer, "D2 looks back to D1")
}

func TestAttachLookback_VehiclesDoNotLeak(t *testing.T) {
	records := []domain.TripRecord{
		tripOn("V1", 1, 1000),
		tripOn("V2", 1, 9000),
		tripOn("V1", 2, 2000),
		tripOn("V2", 2, 9500),
	}

	out := AttachLookback(records)

	assert.False(t, out[0].PrevManualEndOdometer.Valid)
	assert.False(t, out[1].PrevManualEndOdometer.Valid)
	assert.Equal(t, domain.MeasurementOf(1000), out[2].PrevManualEndOdometer)
	assert.Equal(t, domain.MeasurementOf(9000), out[3].PrevManualEndOdometer)
}

func TestAttachLookback_UnknownDatesSortLast(t *testing.T) {
	undated := domain.TripRecord{
		VehicleID:         "V1",
		ManualEndOdometer: domain.MeasurementOf(500),
	}
	records := []domain.TripRecord{
		undated,
		tripOn("V1", 1, 1000),
		tripOn("V1", 2, 2000),
	}

	out := AttachLookback(records)

	assert.Equal(t, domain.MeasurementOf(2000), out[0].PrevManualEndOdometer,
		"unknown date sorts after all known dates")
	assert.False(t, out[1].PrevManualEndOdometer.Valid)
	assert.Equal(t, domain.MeasurementOf(1000), out[2].PrevManualEndOdometer)
}

func TestAttachLookback_SameDateTieBreaksByInputOrder(t *testing.T) {
	first := tripOn("V1", 1, 1000)
	second := tripOn("V1", 1, 2000)
	records := []domain.TripRecord{first, second}

	out := AttachLookback(records)

	assert.False(t, out[0].PrevManualEndOdometer.Valid)
	assert.Equal(t, domain.MeasurementOf(1000), out[1].PrevManualEndOdometer)

	// Reproducible across runs on identical input.
	again := AttachLookback(records)
	assert.Equal(t, out, again)
}

func TestAttachLookback_MissingEndOdometerPropagatesAsNoValue(t *testing.T) {
	dayOne := tripOn("V1", 1, 1000)
	dayOne.ManualEndOdometer = domain.Measurement{}
	records := []domain.TripRecord{
		dayOne,
		tripOn("V1", 2, 2000),
	}

	out := AttachLookback(records)

	assert.False(t, out[1].PrevManualEndOdometer.Valid,
		"a predecessor without an end reading yields no lookback value")
}

func TestAttachLookback_DoesNotMutateInput(t *testing.T) {
	records := []domain.TripRecord{
		tripOn("V1", 1, 1000),
		tripOn("V1", 2, 2000),
	}

	_ = AttachLookback(records)

	assert.False(t, records[1].PrevManualEndOdometer.Valid)
}
