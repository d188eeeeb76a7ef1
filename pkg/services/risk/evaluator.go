// Package risk evaluates trip records against the fixed anomaly rules.
package risk

import (
	"github.com/de-tools/fleet-audit/pkg/models/domain"
	"github.com/de-tools/fleet-audit/pkg/orderedset"
)

// Evaluate applies every rule to one lookback-annotated record. Rules are
// independent and additive; categories and reasons are deduplicated in the
// order rules fired. Every record evaluates successfully, however sparse.
func Evaluate(rec domain.TripRecord) domain.EvaluatedRecord {
	eval := domain.EvaluatedRecord{TripRecord: rec}

	categories := orderedset.New()
	reasons := orderedset.New()
	for _, rule := range rules {
		finding, triggered := rule(rec)
		if !triggered {
			continue
		}
		categories.Add(finding.Category)
		reasons.Add(finding.Reason)
		eval.RiskScore += finding.Weight
	}

	if categories.Len() > 0 {
		eval.RiskCategories = categories.Values()
		eval.RiskReasons = reasons.Values()
	}

	return eval
}

// EvaluateAll evaluates a batch in order.
func EvaluateAll(records []domain.TripRecord) []domain.EvaluatedRecord {
	out := make([]domain.EvaluatedRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, Evaluate(rec))
	}
	return out
}
