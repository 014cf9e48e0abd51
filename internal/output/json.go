package output

import (
	"encoding/json"

	"github.com/rgehrsitz/healthsim/internal/domain"
)

// JSONFormatter renders the report as indented JSON for downstream tooling.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.AnalysisReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
