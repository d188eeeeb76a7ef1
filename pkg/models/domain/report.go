package domain

import "time"

// VehicleRiskSummary is one aggregated (zone, hub, vehicle) row of the risk
// report. Dates keep one entry per contributing flagged record in input
// order, duplicates included; categories and reasons are set unions in
// first-seen order.
type VehicleRiskSummary struct {
	Zone       string
	Hub        string
	VehicleID  string
	Dates      []string
	Categories []string
	Reasons    []string
	TotalScore int
}

// RunStats summarizes one analysis pass over an uploaded batch.
type RunStats struct {
	RowsRead        int
	RowsFlagged     int
	VehiclesFlagged int
}

// RiskReport is the full outcome of analyzing one uploaded trip log. It
// lives only for the duration of the request that produced it.
type RiskReport struct {
	BatchID     string
	GeneratedAt time.Time
	Summaries   []VehicleRiskSummary
	Stats       RunStats
}
