package trips

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/de-tools/fleet-audit/pkg/adapters"
	"github.com/de-tools/fleet-audit/pkg/models/domain"
	"github.com/de-tools/fleet-audit/pkg/services/analysis"
	"github.com/de-tools/fleet-audit/pkg/services/ingest"
	"github.com/de-tools/fleet-audit/pkg/services/report"
)

// Uploads are bounded daily batches, not streams.
const maxUploadBytes = 64 << 20

const uploadField = "file"

type Handler struct {
	analyzer analysis.Analyzer
}

func NewHandler(analyzer analysis.Analyzer) *Handler {
	return &Handler{analyzer: analyzer}
}

// DownloadReport accepts a multipart trip log upload and responds with the
// aggregated risk report as a CSV attachment. The bytes written are exactly
// the serializer's output, untransformed.
func (h *Handler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	riskReport, ok := h.analyzeUpload(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="risk_analysis.csv"`)

	if err := report.NewCSVReporter(w).Handle(riskReport); err != nil {
		// Headers are already sent; nothing left to do but log.
		logger.Error().Err(err).Msg("failed to write report csv")
	}
}

// Summarize accepts the same upload and responds with the report as JSON,
// for clients that render the table themselves.
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	riskReport, ok := h.analyzeUpload(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapRiskReportDomainToApi(riskReport)); err != nil {
		logger.Error().Err(err).Msg("failed to encode risk report")
	}
}

func (h *Handler) analyzeUpload(w http.ResponseWriter, r *http.Request) (*domain.RiskReport, bool) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, _, err := r.FormFile(uploadField)
	if err != nil {
		http.Error(w, "missing 'file' upload field", http.StatusBadRequest)
		return nil, false
	}
	defer file.Close()

	riskReport, err := h.analyzer.Analyze(ctx, file)
	if err != nil {
		var missingCols *ingest.MissingColumnsError
		var parseErr *csv.ParseError
		switch {
		case errors.Is(err, ingest.ErrEmptyInput),
			errors.As(err, &missingCols),
			errors.As(err, &parseErr):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			logger.Error().Err(err).Msg("trip analysis failed")
			http.Error(w, "failed to analyze trip log", http.StatusInternalServerError)
		}
		return nil, false
	}

	return riskReport, true
}
