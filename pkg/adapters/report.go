package adapters

import (
	"github.com/de-tools/fleet-audit/pkg/models/api"
	"github.com/de-tools/fleet-audit/pkg/models/domain"
)

func MapVehicleRiskSummaryDomainToApi(s domain.VehicleRiskSummary) api.VehicleRiskSummary {
	return api.VehicleRiskSummary{
		Zone:        s.Zone,
		Hub:         s.Hub,
		VehicleID:   s.VehicleID,
		Dates:       s.Dates,
		RiskFactors: s.Categories,
		Reasoning:   s.Reasons,
		RiskValue:   s.TotalScore,
	}
}

func MapRiskReportDomainToApi(r *domain.RiskReport) api.RiskReport {
	res := api.RiskReport{
		BatchID:         r.BatchID,
		GeneratedAt:     r.GeneratedAt,
		RowsRead:        r.Stats.RowsRead,
		RowsFlagged:     r.Stats.RowsFlagged,
		VehiclesFlagged: r.Stats.VehiclesFlagged,
		Summaries:       make([]api.VehicleRiskSummary, 0, len(r.Summaries)),
	}
	for _, s := range r.Summaries {
		res.Summaries = append(res.Summaries, MapVehicleRiskSummaryDomainToApi(s))
	}
	return res
}
