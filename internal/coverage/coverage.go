// Package coverage encodes the FSMA Produce Safety Rule coverage
// determination: the declarative question flow the wizard walks, the
// per-commodity sub-flow, and the top-level outcome rules.
package coverage

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/amoreland/tiller/internal/flow"
)

//go:embed fsma_flow.json
var fsmaFlowJSON []byte

// LoadFlow parses and validates the built-in coverage flow definition.
// The definition is immutable; callers construct sessions against it.
func LoadFlow() (*flow.Definition, error) {
	def, err := flow.Parse(fsmaFlowJSON)
	if err != nil {
		return nil, fmt.Errorf("built-in coverage flow: %w", err)
	}
	return def, nil
}

// LoadFlowFile parses a flow definition from an external file, allowing the
// built-in document to be overridden (e.g. for a state-specific variant).
func LoadFlowFile(path string) (*flow.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading flow definition: %w", err)
	}
	def, err := flow.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("flow definition %s: %w", path, err)
	}
	return def, nil
}
