package risk

import (
	"math"

	"github.com/de-tools/fleet-audit/pkg/models/domain"
)

// Category names, reason strings and weights are fixed; the rule set is not
// user configurable.
const (
	CategoryOdometerInconsistency = "Odometer inconsistency"
	CategoryGPSDiscrepancy        = "GPS discrepancy"
	CategoryExcessiveDistance     = "Excessive travel distance"

	ReasonOdometerInconsistency = "Odometer reading is less than the previous day's end reading"
	ReasonGPSDiscrepancy        = "GPS distance and manual distance differ significantly"
	ReasonExcessiveDistance     = "Manual distance travelled exceeds 125 KM in a day"

	WeightOdometerInconsistency = 20
	WeightGPSDiscrepancy        = 10
	WeightExcessiveDistance     = 15
)

const (
	gpsAvailableYes    = "Yes"
	gpsToleranceKM     = 0.1
	maxDailyDistanceKM = 125.0
)

// Finding is one triggered rule's contribution to a record's risk profile.
type Finding struct {
	Category string
	Reason   string
	Weight   int
}

// A rule inspects one lookback-annotated record. A field with "no value"
// never triggers a rule.
type ruleFunc func(domain.TripRecord) (Finding, bool)

// Evaluation order is fixed so deduplicated output order is reproducible.
var rules = []ruleFunc{
	checkOdometerInconsistency,
	checkGPSDiscrepancy,
	checkExcessiveDistance,
}

// checkOdometerInconsistency flags a start odometer reading below the same
// vehicle's previous end reading.
func checkOdometerInconsistency(rec domain.TripRecord) (Finding, bool) {
	if !rec.PrevManualEndOdometer.Valid || !rec.ManualStartOdometer.Valid {
		return Finding{}, false
	}
	if rec.ManualStartOdometer.Value >= rec.PrevManualEndOdometer.Value {
		return Finding{}, false
	}
	return Finding{
		Category: CategoryOdometerInconsistency,
		Reason:   ReasonOdometerInconsistency,
		Weight:   WeightOdometerInconsistency,
	}, true
}

// checkGPSDiscrepancy flags manual and GPS distances that disagree by more
// than the tolerance. Only applies when the vehicle reports GPS as available.
func checkGPSDiscrepancy(rec domain.TripRecord) (Finding, bool) {
	if rec.GPSAvailable != gpsAvailableYes {
		return Finding{}, false
	}
	if !rec.TripGPSDistanceKM.Valid || !rec.ManualDistanceKM.Valid {
		return Finding{}, false
	}
	if math.Abs(rec.ManualDistanceKM.Value-rec.TripGPSDistanceKM.Value) <= gpsToleranceKM {
		return Finding{}, false
	}
	return Finding{
		Category: CategoryGPSDiscrepancy,
		Reason:   ReasonGPSDiscrepancy,
		Weight:   WeightGPSDiscrepancy,
	}, true
}

// checkExcessiveDistance flags a manually reported daily distance beyond the
// plausible maximum.
func checkExcessiveDistance(rec domain.TripRecord) (Finding, bool) {
	if !rec.ManualDistanceKM.Valid || rec.ManualDistanceKM.Value <= maxDailyDistanceKM {
		return Finding{}, false
	}
	return Finding{
		Category: CategoryExcessiveDistance,
		Reason:   ReasonExcessiveDistance,
		Weight:   WeightExcessiveDistance,
	}, true
}
