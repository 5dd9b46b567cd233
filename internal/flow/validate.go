package flow

import "fmt"

// Validate checks a Definition for structural errors: the start node and
// every next/resultKey reference must resolve, and option values must be
// unique within each question. Returns a slice of errors (empty if valid).
func (d *Definition) Validate() []error {
	var errs []error

	if d.Start == "" {
		errs = append(errs, fmt.Errorf("start node id is required"))
	} else if _, ok := d.Nodes[d.Start]; !ok {
		errs = append(errs, fmt.Errorf("start node %q does not exist", d.Start))
	}

	if len(d.Nodes) == 0 {
		errs = append(errs, fmt.Errorf("at least one node is required"))
	}

	for id, node := range d.Nodes {
		switch n := node.(type) {
		case *IntroNode:
			if len(n.Actions) == 0 {
				errs = append(errs, fmt.Errorf("intro %q: at least one action is required", id))
			}
			errs = append(errs, d.validateActions(id, n.Actions)...)
		case *QuestionNode:
			if len(n.Options) == 0 {
				errs = append(errs, fmt.Errorf("question %q: at least one option is required", id))
			}
			seen := map[string]bool{}
			for i, opt := range n.Options {
				if opt.Value == "" {
					errs = append(errs, fmt.Errorf("question %q: option[%d] value is required", id, i))
				}
				if seen[opt.Value] {
					errs = append(errs, fmt.Errorf("question %q: duplicate option value %q", id, opt.Value))
				}
				seen[opt.Value] = true
				if _, ok := d.Nodes[opt.Next]; !ok {
					errs = append(errs, fmt.Errorf("question %q: option %q references unknown node %q", id, opt.Value, opt.Next))
				}
			}
		case *HelperNode:
			if len(n.Actions) == 0 {
				errs = append(errs, fmt.Errorf("helper %q: at least one action is required", id))
			}
			errs = append(errs, d.validateActions(id, n.Actions)...)
		case *ResultNode:
			if _, ok := d.Results[n.ResultKey]; !ok {
				errs = append(errs, fmt.Errorf("result node %q: unknown result key %q", id, n.ResultKey))
			}
		default:
			errs = append(errs, fmt.Errorf("node %q: unsupported node type %T", id, node))
		}
	}

	for i, qid := range d.SummaryOrder {
		if _, ok := d.Nodes[qid]; !ok {
			errs = append(errs, fmt.Errorf("summaryOrder[%d]: unknown node %q", i, qid))
		}
	}

	for key, r := range d.Results {
		if r.Label == "" {
			errs = append(errs, fmt.Errorf("result %q: label is required", key))
		}
	}

	return errs
}

func (d *Definition) validateActions(nodeID string, actions []Action) []error {
	var errs []error
	for i, a := range actions {
		if a.ID == "" {
			errs = append(errs, fmt.Errorf("node %q: action[%d] id is required", nodeID, i))
		}
		if _, ok := d.Nodes[a.Next]; !ok {
			errs = append(errs, fmt.Errorf("node %q: action %q references unknown node %q", nodeID, a.ID, a.Next))
		}
	}
	return errs
}
