package output

import (
	"github.com/budgetflow/budgetflow/internal/domain"
)

// Formatter renders a simulation result in one output format.
type Formatter interface {
	Format(result *domain.SimulationResult) ([]byte, error)
	Name() string
}

var formatters = []Formatter{
	ConsoleFormatter{},
	ConsoleLiteFormatter{},
	JSONFormatter{},
	CSVFormatter{},
}

// GetFormatterByName returns the registered formatter with the given name,
// or nil when no such formatter exists.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered formatter names.
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for _, f := range formatters {
		names = append(names, f.Name())
	}
	return names
}
