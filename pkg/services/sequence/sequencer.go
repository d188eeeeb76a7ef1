// Package sequence attaches per-vehicle lookback state to trip records.
package sequence

import (
	"sort"

	"github.com/de-tools/fleet-audit/pkg/models/domain"
)

// AttachLookback annotates every record with the end odometer of its
// same-vehicle chronological predecessor, or leaves it as "no value" for a
// vehicle's first record.
//
// Two passes: records are first indexed by vehicle, then each vehicle's
// indices are stable-sorted by creation date (unknown dates last, ties kept
// in input order) and the predecessor's end odometer is written back onto
// the record directly. The returned slice keeps the original input order.
func AttachLookback(records []domain.TripRecord) []domain.TripRecord {
	out := make([]domain.TripRecord, len(records))
	copy(out, records)

	byVehicle := make(map[string][]int)
	for i, rec := range out {
		byVehicle[rec.VehicleID] = append(byVehicle[rec.VehicleID], i)
	}

	for _, indices := range byVehicle {
		sorted := make([]int, len(indices))
		copy(sorted, indices)
		sort.SliceStable(sorted, func(a, b int) bool {
			return out[sorted[a]].CreatedAt.Before(out[sorted[b]].CreatedAt)
		})

		for pos := 1; pos < len(sorted); pos++ {
			out[sorted[pos]].PrevManualEndOdometer = out[sorted[pos-1]].ManualEndOdometer
		}
	}

	return out
}
