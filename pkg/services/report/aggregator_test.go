package report

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/fleet-audit/pkg/models/domain"
)

func flaggedRecord(zone, hub, vehicle string, day int, categories []string, reasons []string, score int) domain.EvaluatedRecord {
	return domain.EvaluatedRecord{
		TripRecord: domain.TripRecord{
			Zone:      zone,
			Hub:       hub,
			VehicleID: vehicle,
			CreatedAt: domain.DateOf(time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)),
		},
		RiskCategories: categories,
		RiskReasons:    reasons,
		RiskScore:      score,
	}
}

func TestAggregate_GroupsByZoneHubVehicle(t *testing.T) {
	records := []domain.EvaluatedRecord{
		flaggedRecord("North", "Hub A", "V1", 1, []string{"Odometer inconsistency"}, []string{"r1"}, 20),
		flaggedRecord("North", "Hub A", "V1", 2, []string{"Excessive travel distance"}, []string{"r2"}, 15),
		flaggedRecord("North", "Hub B", "V1", 1, []string{"GPS discrepancy"}, []string{"r3"}, 10),
	}

	rows := Aggregate(records)
	require.Len(t, rows, 2, "same vehicle id under a different hub is a separate group")

	first := rows[0]
	assert.Equal(t, "North", first.Zone)
	assert.Equal(t, "Hub A", first.Hub)
	assert.Equal(t, "V1", first.VehicleID)
	assert.Equal(t, []string{"2024-03-01", "2024-03-02"}, first.Dates)
	assert.Equal(t, []string{"Odometer inconsistency", "Excessive travel distance"}, first.Categories)
	assert.Equal(t, []string{"r1", "r2"}, first.Reasons)
	assert.Equal(t, 35, first.TotalScore)

	assert.Equal(t, "Hub B", rows[1].Hub)
	assert.Equal(t, 10, rows[1].TotalScore)
}

func TestAggregate_DiscardsUnflaggedRecords(t *testing.T) {
	records := []domain.EvaluatedRecord{
		{TripRecord: domain.TripRecord{Zone: "North", Hub: "Hub A", VehicleID: "V1"}},
	}

	assert.Empty(t, Aggregate(records), "no flagged rows produces a valid empty report")
}

func TestAggregate_DatesKeepDuplicatesAndOrder(t *testing.T) {
	records := []domain.EvaluatedRecord{
		flaggedRecord("North", "Hub A", "V1", 5, []string{"c"}, []string{"r"}, 10),
		flaggedRecord("North", "Hub A", "V1", 5, []string{"c"}, []string{"r"}, 10),
		flaggedRecord("North", "Hub A", "V1", 1, []string{"c"}, []string{"r"}, 10),
	}

	rows := Aggregate(records)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"2024-03-05", "2024-03-05", "2024-03-01"}, rows[0].Dates)
	assert.Equal(t, []string{"c"}, rows[0].Categories, "categories are a set union")
	assert.Equal(t, 30, rows[0].TotalScore)
}

func TestAggregate_UnknownDateRendersExplicitly(t *testing.T) {
	rec := flaggedRecord("North", "Hub A", "V1", 1, []string{"c"}, []string{"r"}, 10)
	rec.CreatedAt = domain.TripDate{}

	rows := Aggregate([]domain.EvaluatedRecord{rec})
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"unknown"}, rows[0].Dates)
}

func TestAggregate_OrderInvariance(t *testing.T) {
	base := []domain.EvaluatedRecord{
		flaggedRecord("North", "Hub A", "V1", 1, []string{"Odometer inconsistency"}, []string{"r1"}, 20),
		flaggedRecord("North", "Hub A", "V1", 2, []string{"GPS discrepancy"}, []string{"r2"}, 10),
		flaggedRecord("South", "Hub C", "V2", 1, []string{"Excessive travel distance"}, []string{"r3"}, 15),
		flaggedRecord("North", "Hub A", "V1", 3, []string{"GPS discrepancy"}, []string{"r2"}, 10),
	}
	shuffled := []domain.EvaluatedRecord{base[3], base[2], base[0], base[1]}

	baseRows := Aggregate(base)
	shuffledRows := Aggregate(shuffled)
	require.Len(t, baseRows, 2)
	require.Len(t, shuffledRows, 2)

	// Scores, category sets and reason sets must not depend on record order;
	// only the literal dates order may differ.
	findRow := func(rows []domain.VehicleRiskSummary, vehicle string) domain.VehicleRiskSummary {
		for _, r := range rows {
			if r.VehicleID == vehicle {
				return r
			}
		}
		t.Fatalf("vehicle %s not found", vehicle)
		return domain.VehicleRiskSummary{}
	}

	for _, vehicle := range []string{"V1", "V2"} {
		a := findRow(baseRows, vehicle)
		b := findRow(shuffledRows, vehicle)

		assert.Equal(t, a.TotalScore, b.TotalScore)
		assert.ElementsMatch(t, a.Categories, b.Categories)
		assert.ElementsMatch(t, a.Reasons, b.Reasons)

		sortedA := append([]string(nil), a.Dates...)
		sortedB := append([]string(nil), b.Dates...)
		sort.Strings(sortedA)
		sort.Strings(sortedB)
		assert.Equal(t, sortedA, sortedB)
	}
}

func TestAggregate_DeterministicGroupOrder(t *testing.T) {
	records := []domain.EvaluatedRecord{
		flaggedRecord("South", "Hub C", "V2", 1, []string{"c"}, []string{"r"}, 10),
		flaggedRecord("North", "Hub A", "V1", 1, []string{"c"}, []string{"r"}, 10),
	}

	first := Aggregate(records)
	second := Aggregate(records)

	assert.Equal(t, first, second)
	assert.Equal(t, "V2", first[0].VehicleID, "groups come out in first-seen order")
}
