// Package flow implements a declarative decision-flow engine: a static
// graph of intro, question, helper, and result nodes interpreted against a
// per-session answer map. The definition is loaded once from JSON and never
// mutated; all session state lives in Session.
package flow

// Answers maps question node IDs to the selected option value.
type Answers map[string]string

// Flags maps flag names to boolean markers set by helper actions
// (e.g. "provisional").
type Flags map[string]bool

// Tone is a display hint for result banners.
type Tone string

const (
	ToneNeutral       Tone = "neutral"
	ToneInformational Tone = "informational"
	ToneImportant     Tone = "important"
)

// Result is the display content for a terminal classification.
type Result struct {
	Label         string
	Summary       string
	Tone          Tone
	ReminderTitle string
	ReminderItems []string
}

// Definition is the immutable flow graph. Start must resolve to a key in
// Nodes, as must every Next reference inside any node; every ResultKey must
// resolve to a key in Results. Validate enforces this at load time.
type Definition struct {
	Start        string
	TotalSteps   int
	SummaryOrder []string
	Results      map[string]Result
	Nodes        map[string]Node
}

// Node is the closed set of flow node variants. Exactly four types satisfy
// it: IntroNode, QuestionNode, HelperNode, ResultNode.
type Node interface {
	NodeID() string
	node()
}

// Action is a navigation button on an intro or helper node. Helper actions
// may additionally merge answer and flag patches into session state when
// taken.
type Action struct {
	ID         string
	Label      string
	Next       string
	SetAnswers Answers
	SetFlags   Flags
}

// Option is one selectable answer on a question node. Selecting it records
// Value under the question's ID; confirming the selection navigates to Next.
type Option struct {
	Label string
	Value string
	Next  string
}

// IntroNode opens the flow. It persists no answer.
type IntroNode struct {
	ID      string
	Title   string
	Body    []string
	Actions []Action
}

// QuestionNode asks a single- or multi-choice question. Step is the
// 1-based position for progress display; zero means unstepped.
type QuestionNode struct {
	ID         string
	Step       int
	Title      string
	Prompt     []string
	HelperText string
	Options    []Option
}

// HelperNode is an informational interstitial whose actions can navigate
// and patch session state in one move.
type HelperNode struct {
	ID      string
	Step    int
	Title   string
	Body    []string
	Actions []Action
}

// ResultNode terminates the flow, referencing a key in Definition.Results.
type ResultNode struct {
	ID        string
	ResultKey string
}

func (n *IntroNode) NodeID() string    { return n.ID }
func (n *QuestionNode) NodeID() string { return n.ID }
func (n *HelperNode) NodeID() string   { return n.ID }
func (n *ResultNode) NodeID() string   { return n.ID }

func (n *IntroNode) node()    {}
func (n *QuestionNode) node() {}
func (n *HelperNode) node()   {}
func (n *ResultNode) node()   {}

// Node looks up a node by ID. A false return means a dangling reference,
// which Validate rules out for well-formed definitions; callers treat it as
// a configuration fault, not a navigable state.
func (d *Definition) Node(id string) (Node, bool) {
	n, ok := d.Nodes[id]
	return n, ok
}

// Result looks up a result definition by key.
func (d *Definition) Result(key string) (Result, bool) {
	r, ok := d.Results[key]
	return r, ok
}

// AnswerLabel returns the display label of the option whose value matches
// the recorded answer. Used for human-readable summaries only, never for
// control flow.
func (n *QuestionNode) AnswerLabel(value string) (string, bool) {
	for _, opt := range n.Options {
		if opt.Value == value {
			return opt.Label, true
		}
	}
	return "", false
}

// OptionByValue returns the option carrying the given value.
func (n *QuestionNode) OptionByValue(value string) (Option, bool) {
	for _, opt := range n.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}

// clone helpers: history snapshots are value copies, not references.

func (a Answers) clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

func (f Flags) clone() Flags {
	out := make(Flags, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
