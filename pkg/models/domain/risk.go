package domain

// EvaluatedRecord is a TripRecord annotated with the outcome of the risk
// rules. Categories and reasons are deduplicated and keep the order rules
// fired in; a record with no categories carries no risk evidence.
type EvaluatedRecord struct {
	TripRecord
	RiskCategories []string
	RiskReasons    []string
	RiskScore      int
}

// Flagged reports whether at least one risk rule triggered on the record.
func (e EvaluatedRecord) Flagged() bool {
	return len(e.RiskCategories) > 0
}
