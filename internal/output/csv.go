package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/healthsim/internal/domain"
)

// CSVFormatter implements the simple summary CSV output: one row per ranked
// plan tier.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.AnalysisReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Rank", "Tier", "AnnualPremium", "EstimatedOOP", "TotalAnnualCost", "Deductible", "OOPMaximum"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, t := range report.TierRanking {
		row := []string{
			strconv.Itoa(t.Ranking),
			string(t.MetalTier),
			t.AnnualPremium.StringFixed(2),
			t.EstimatedOOP.StringFixed(2),
			t.TotalAnnualCost.StringFixed(2),
			t.Deductible.StringFixed(2),
			t.OOPMaximum.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
