package api

import "time"

type VehicleRiskSummary struct {
	Zone        string   `json:"zone"`
	Hub         string   `json:"hub"`
	VehicleID   string   `json:"vehicle_id"`
	Dates       []string `json:"dates"`
	RiskFactors []string `json:"risk_factors"`
	Reasoning   []string `json:"reasoning"`
	RiskValue   int      `json:"risk_value"`
}

type RiskReport struct {
	BatchID         string               `json:"batch_id"`
	GeneratedAt     time.Time            `json:"generated_at"`
	RowsRead        int                  `json:"rows_read"`
	RowsFlagged     int                  `json:"rows_flagged"`
	VehiclesFlagged int                  `json:"vehicles_flagged"`
	Summaries       []VehicleRiskSummary `json:"summaries"`
}
