package domain

import "time"

// Measurement is an optional numeric reading. Odometer and distance cells in
// uploaded trip logs are frequently blank or unparsable; zero is a valid,
// meaningfully different reading, so presence is tracked separately from the
// value.
type Measurement struct {
	Value float64
	Valid bool
}

// MeasurementOf wraps a present reading.
func MeasurementOf(v float64) Measurement {
	return Measurement{Value: v, Valid: true}
}

// TripDate is a trip creation date that may be unknown when the uploaded
// cell does not parse. Unknown dates sort after known ones and never abort
// a batch.
type TripDate struct {
	Time  time.Time
	Known bool
}

// DateOf wraps a known creation date.
func DateOf(t time.Time) TripDate {
	return TripDate{Time: t, Known: true}
}

// Before orders trip dates ascending with unknown dates last. Equal dates
// compare false both ways so stable sorts keep their input order.
func (d TripDate) Before(other TripDate) bool {
	if !d.Known {
		return false
	}
	if !other.Known {
		return true
	}
	return d.Time.Before(other.Time)
}

// String renders the date the way report consumers see it.
func (d TripDate) String() string {
	if !d.Known {
		return "unknown"
	}
	return d.Time.Format("2006-01-02")
}

// TripRecord is one vehicle-day observation from the uploaded log.
// PrevManualEndOdometer is derived by the lookback sequencer, never read
// from input.
type TripRecord struct {
	Zone                  string
	Hub                   string
	VehicleID             string
	CreatedAt             TripDate
	ManualStartOdometer   Measurement // meters
	ManualEndOdometer     Measurement // meters
	GPSAvailable          string      // raw cell value, "Yes" enables GPS checks
	TripGPSDistanceKM     Measurement
	ManualDistanceKM      Measurement
	PrevManualEndOdometer Measurement // meters, same-vehicle chronological predecessor
}
