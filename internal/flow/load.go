package flow

import (
	"encoding/json"
	"fmt"
	"strings"
)

// definitionJSON mirrors the wire shape of a flow definition document.
type definitionJSON struct {
	Start        string                `json:"start"`
	TotalSteps   int                   `json:"totalSteps,omitempty"`
	SummaryOrder []string              `json:"summaryOrder"`
	Results      map[string]resultJSON `json:"results"`
	Nodes        map[string]nodeJSON   `json:"nodes"`
}

type resultJSON struct {
	Label         string   `json:"label"`
	Summary       string   `json:"summary"`
	Tone          string   `json:"tone,omitempty"`
	ReminderTitle string   `json:"reminderTitle,omitempty"`
	ReminderItems []string `json:"reminderItems,omitempty"`
}

// nodeJSON is the envelope for all four node variants, discriminated by Type.
type nodeJSON struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Step       int             `json:"step,omitempty"`
	Title      string          `json:"title,omitempty"`
	Body       []string        `json:"body,omitempty"`
	Prompt     json.RawMessage `json:"prompt,omitempty"`
	HelperText string          `json:"helperText,omitempty"`
	Options    []optionJSON    `json:"options,omitempty"`
	Actions    []actionJSON    `json:"actions,omitempty"`
	ResultKey  string          `json:"resultKey,omitempty"`
}

type optionJSON struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Next  string `json:"next"`
}

type actionJSON struct {
	ID         string            `json:"id"`
	Label      string            `json:"label"`
	Next       string            `json:"next"`
	SetAnswers map[string]string `json:"setAnswers,omitempty"`
	SetFlags   map[string]bool   `json:"setFlags,omitempty"`
}

// parsePrompt accepts a prompt that is either a single string or an ordered
// array of paragraph strings, normalizing to a slice.
func parsePrompt(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}, nil
	}

	var lines []string
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("prompt must be a string or array of strings: %w", err)
	}
	return lines, nil
}

// Parse decodes and validates a flow definition document. An invalid
// definition is a fatal configuration error: Parse never returns a partially
// usable Definition alongside an error.
func Parse(data []byte) (*Definition, error) {
	var doc definitionJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding flow definition: %w", err)
	}

	def := &Definition{
		Start:        doc.Start,
		TotalSteps:   doc.TotalSteps,
		SummaryOrder: doc.SummaryOrder,
		Results:      make(map[string]Result, len(doc.Results)),
		Nodes:        make(map[string]Node, len(doc.Nodes)),
	}

	for key, r := range doc.Results {
		tone := Tone(r.Tone)
		if tone == "" {
			tone = ToneNeutral
		}
		def.Results[key] = Result{
			Label:         r.Label,
			Summary:       r.Summary,
			Tone:          tone,
			ReminderTitle: r.ReminderTitle,
			ReminderItems: r.ReminderItems,
		}
	}

	for id, raw := range doc.Nodes {
		node, err := buildNode(id, raw)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", id, err)
		}
		def.Nodes[id] = node
	}

	if errs := def.Validate(); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("invalid flow definition: %s", strings.Join(msgs, "; "))
	}

	return def, nil
}

func buildNode(id string, raw nodeJSON) (Node, error) {
	// The map key is authoritative; an embedded id must agree with it.
	if raw.ID != "" && raw.ID != id {
		return nil, fmt.Errorf("embedded id %q does not match map key", raw.ID)
	}

	switch raw.Type {
	case "intro":
		return &IntroNode{
			ID:      id,
			Title:   raw.Title,
			Body:    raw.Body,
			Actions: buildActions(raw.Actions),
		}, nil
	case "question":
		prompt, err := parsePrompt(raw.Prompt)
		if err != nil {
			return nil, err
		}
		options := make([]Option, len(raw.Options))
		for i, o := range raw.Options {
			options[i] = Option(o)
		}
		return &QuestionNode{
			ID:         id,
			Step:       raw.Step,
			Title:      raw.Title,
			Prompt:     prompt,
			HelperText: raw.HelperText,
			Options:    options,
		}, nil
	case "helper":
		return &HelperNode{
			ID:      id,
			Step:    raw.Step,
			Title:   raw.Title,
			Body:    raw.Body,
			Actions: buildActions(raw.Actions),
		}, nil
	case "result":
		return &ResultNode{
			ID:        id,
			ResultKey: raw.ResultKey,
		}, nil
	default:
		return nil, fmt.Errorf("unknown node type %q", raw.Type)
	}
}

func buildActions(raw []actionJSON) []Action {
	actions := make([]Action, len(raw))
	for i, a := range raw {
		actions[i] = Action{
			ID:         a.ID,
			Label:      a.Label,
			Next:       a.Next,
			SetAnswers: Answers(a.SetAnswers),
			SetFlags:   Flags(a.SetFlags),
		}
	}
	return actions
}
