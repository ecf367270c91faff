package output

import (
	"encoding/json"

	"github.com/budgetflow/budgetflow/internal/domain"
)

// JSONFormatter renders the full simulation result as indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
