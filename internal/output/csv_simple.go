package output

import (
	"bytes"
	"encoding/csv"

	"github.com/budgetflow/budgetflow/internal/domain"
)

// CSVFormatter renders the waterfall series as CSV, one row per step.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"Category", "Delta", "Start", "End", "Label", "Class"}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	for _, step := range result.Waterfall {
		row := []string{
			step.Category,
			step.Delta.StringFixed(2),
			step.Start.StringFixed(2),
			step.End.StringFixed(2),
			step.Label.StringFixed(2),
			string(step.Class),
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
