package trips

import (
	"html/template"
	"net/http"

	"github.com/rs/zerolog"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
  <title>Fleet Trip Risk Audit</title>
</head>
<body>
  <h1>Fleet Trip Risk Audit</h1>
  <p>Upload a daily trip log (CSV) to download the vehicle risk report.</p>
  <form action="/api/v1/trips/report" method="post" enctype="multipart/form-data">
    <input type="file" name="file" accept=".csv" required>
    <button type="submit">Analyze</button>
  </form>
</body>
</html>
`))

// UploadPage serves the upload form. Report rendering itself is handled by
// the API endpoints the form posts to.
func (h *Handler) UploadPage(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, nil); err != nil {
		logger.Error().Err(err).Msg("failed to render upload page")
	}
}
