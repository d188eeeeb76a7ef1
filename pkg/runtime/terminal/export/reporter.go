package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/fleet-audit/pkg/models/domain"
)

// Reporter outputs risk reports to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.RiskReport) error {
	tmpl := `
Vehicle Risk Report {{.BatchID}}
Generated: {{.GeneratedAt.Format "2006-01-02 15:04:05"}}
Rows read: {{.Stats.RowsRead}}, rows flagged: {{.Stats.RowsFlagged}}, vehicles flagged: {{.Stats.VehiclesFlagged}}
{{range .Summaries}}
=== {{.Zone}} / {{.Hub}} / {{.VehicleID}} (risk value {{.TotalScore}}) ===
Dates: {{join .Dates ", "}}
Risk factors: {{join .Categories "; "}}
Reasoning: {{join .Reasons "; "}}
{{else}}
No flagged vehicles.
{{end}}
`
	t, err := template.New("report").Funcs(template.FuncMap{"join": strings.Join}).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
