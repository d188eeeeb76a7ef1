// Package report rolls flagged records up into per-vehicle summaries and
// serializes them for transport.
package report

import (
	"github.com/de-tools/fleet-audit/pkg/models/domain"
	"github.com/de-tools/fleet-audit/pkg/orderedset"
)

type groupKey struct {
	zone    string
	hub     string
	vehicle string
}

type accumulator struct {
	summary    domain.VehicleRiskSummary
	categories *orderedset.Set
	reasons    *orderedset.Set
}

// Aggregate groups flagged records by (zone, hub, vehicle) and merges each
// group into one summary row. Records without risk evidence are discarded.
// Groups come out in first-seen order; within a group, dates keep the
// supplied record order with duplicates, while categories and reasons are
// unioned across the whole group.
func Aggregate(records []domain.EvaluatedRecord) []domain.VehicleRiskSummary {
	accs := make(map[groupKey]*accumulator)
	var order []groupKey

	for _, rec := range records {
		if !rec.Flagged() {
			continue
		}

		key := groupKey{zone: rec.Zone, hub: rec.Hub, vehicle: rec.VehicleID}
		acc, ok := accs[key]
		if !ok {
			acc = &accumulator{
				summary: domain.VehicleRiskSummary{
					Zone:      rec.Zone,
					Hub:       rec.Hub,
					VehicleID: rec.VehicleID,
				},
				categories: orderedset.New(),
				reasons:    orderedset.New(),
			}
			accs[key] = acc
			order = append(order, key)
		}

		acc.summary.Dates = append(acc.summary.Dates, rec.CreatedAt.String())
		for _, c := range rec.RiskCategories {
			acc.categories.Add(c)
		}
		for _, r := range rec.RiskReasons {
			acc.reasons.Add(r)
		}
		acc.summary.TotalScore += rec.RiskScore
	}

	out := make([]domain.VehicleRiskSummary, 0, len(order))
	for _, key := range order {
		acc := accs[key]
		acc.summary.Categories = acc.categories.Values()
		acc.summary.Reasons = acc.reasons.Values()
		out = append(out, acc.summary)
	}

	return out
}
