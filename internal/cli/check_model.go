package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amoreland/tiller/internal/coverage"
	"github.com/amoreland/tiller/internal/flow"
)

// checkMode selects which machine the wizard is currently driving: the
// declarative flow graph, or the per-commodity sub-flow layered over it.
type checkMode int

const (
	modeFlow checkMode = iota
	modeCommodity
)

// commodityEntryNode is where the sub-flow replaces the graph's single-pass
// commodity questions when a commodity list was provided.
const commodityEntryNode = "q3"

// checkKeyMap holds the wizard's key bindings.
type checkKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Back    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func defaultCheckKeys() checkKeyMap {
	return checkKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Back:    key.NewBinding(key.WithKeys("b", "left"), key.WithHelp("b/←", "back")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// checkModel is the bubbletea model for the coverage check wizard. It drives
// a flow.Session through the definition graph; when a commodity list is
// present, the q3..q5 portion is handled by a coverage.CommodityWalk instead
// of the graph's single-pass questions.
type checkModel struct {
	def     *flow.Definition
	session *flow.Session
	walk    *coverage.CommodityWalk

	commodities []coverage.Commodity

	mode   checkMode
	cursor int
	keys   checkKeyMap

	width  int
	height int

	// save is set when the user confirms the result slide; aborted when the
	// wizard is quit before reaching one.
	save    bool
	aborted bool
}

func newCheckModel(def *flow.Definition, commodities []coverage.Commodity) *checkModel {
	return &checkModel{
		def:         def,
		session:     flow.NewSession(def),
		commodities: commodities,
		keys:        defaultCheckKeys(),
	}
}

func (m *checkModel) Init() tea.Cmd {
	return nil
}

func (m *checkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m *checkModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if !m.atResult() {
			m.aborted = true
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		m.session.Restart()
		m.walk = nil
		m.mode = modeFlow
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.choiceCount()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.goBack()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m.confirm()
	}
	return m, nil
}

// choiceCount returns the number of selectable entries on the current slide.
func (m *checkModel) choiceCount() int {
	if m.mode == modeCommodity {
		return 2 // yes / no
	}
	node, ok := m.session.CurrentNode()
	if !ok {
		return 0
	}
	switch n := node.(type) {
	case *flow.IntroNode:
		return len(n.Actions)
	case *flow.QuestionNode:
		return len(n.Options)
	case *flow.HelperNode:
		return len(n.Actions)
	case *flow.ResultNode:
		return 0
	default:
		panic(fmt.Sprintf("unknown node type %T", node))
	}
}

func (m *checkModel) atResult() bool {
	if m.mode == modeCommodity {
		return false
	}
	node, ok := m.session.CurrentNode()
	if !ok {
		return false
	}
	_, isResult := node.(*flow.ResultNode)
	return isResult
}

// confirm applies the current selection: records and navigates for
// questions, takes the selected action for intro/helper slides, answers the
// active commodity question in commodity mode, and finishes the wizard on a
// result slide.
func (m *checkModel) confirm() (tea.Model, tea.Cmd) {
	if m.mode == modeCommodity {
		m.confirmCommodity()
		return m, nil
	}

	node, ok := m.session.CurrentNode()
	if !ok {
		return m, nil
	}

	switch n := node.(type) {
	case *flow.IntroNode:
		m.takeAction(n.Actions[m.cursor])

	case *flow.QuestionNode:
		opt := n.Options[m.cursor]
		m.session.SelectAnswer(n.ID, opt.Value)
		m.advanceTo(opt.Next, nil)

	case *flow.HelperNode:
		m.takeAction(n.Actions[m.cursor])

	case *flow.ResultNode:
		m.save = true
		return m, tea.Quit

	default:
		panic(fmt.Sprintf("unknown node type %T", node))
	}
	return m, nil
}

func (m *checkModel) takeAction(action flow.Action) {
	var patch *flow.Patch
	if len(action.SetAnswers) > 0 || len(action.SetFlags) > 0 {
		patch = &flow.Patch{Answers: action.SetAnswers, Flags: action.SetFlags}
	}
	m.advanceTo(action.Next, patch)
}

// advanceTo moves the session forward, switching into the commodity
// sub-flow when the target is the commodity entry point and a list exists.
func (m *checkModel) advanceTo(next string, patch *flow.Patch) {
	if err := m.session.Advance(next, patch); err != nil {
		// Validated definitions cannot produce dangling references.
		panic(err)
	}
	if next == commodityEntryNode && len(m.commodities) > 0 {
		if m.walk == nil {
			m.walk = coverage.NewCommodityWalk(m.commodities)
		}
		m.mode = modeCommodity
	}
	m.resetCursor()
}

// confirmCommodity answers the active sub-flow question and routes the
// resulting move. Leaving the sub-flow either jumps straight to an
// aggregate result or resumes the graph at the qualified exemption test.
func (m *checkModel) confirmCommodity() {
	answer := coverage.Yes
	if m.cursor == 1 {
		answer = coverage.No
	}
	m.walk.Answer(answer)

	if m.walk.Next() != coverage.MoveExit {
		m.cursor = 0
		return
	}

	resolved := coverage.ResolveAll(m.walk.Commodities())
	in := coverage.Input{
		GrowsProduce:    coverage.Yes,
		UnderSalesFloor: coverage.No,
		Commodities:     resolved,
	}

	m.mode = modeFlow
	if out, ok := coverage.Evaluate(in); ok {
		m.advanceTo(resultNodeFor(out.Type), nil)
		return
	}
	m.advanceTo("q6", nil)
}

// resultNodeFor maps aggregate outcomes reachable from the commodity walk
// to their graph result nodes.
func resultNodeFor(t coverage.OutcomeType) string {
	switch t {
	case coverage.OutcomeProcessingExemption:
		return "result_processing"
	case coverage.OutcomeNotCoveredFarm:
		return "result_not_covered"
	default:
		panic(fmt.Sprintf("no result node for outcome %q", t))
	}
}

// goBack retreats one step, crossing machine boundaries in both directions:
// backing out of the first commodity question returns to the graph, and
// backing into the commodity entry point re-enters the walk at its last
// position.
func (m *checkModel) goBack() {
	if m.mode == modeCommodity {
		if m.walk.Back() == coverage.MoveExit {
			m.mode = modeFlow
			m.session.Back()
			m.resetCursor()
			return
		}
		m.cursor = 0
		return
	}

	if !m.session.Back() {
		return
	}
	if m.session.CurrentNodeID() == commodityEntryNode && m.walk != nil {
		m.mode = modeCommodity
		m.cursor = 0
		return
	}
	m.resetCursor()
}

// resetCursor positions the cursor on the previously recorded answer when
// revisiting a question, or at the top otherwise.
func (m *checkModel) resetCursor() {
	m.cursor = 0
	node, ok := m.session.CurrentNode()
	if !ok {
		return
	}
	q, ok := node.(*flow.QuestionNode)
	if !ok {
		return
	}
	value, ok := m.session.Answer(q.ID)
	if !ok {
		return
	}
	for i, opt := range q.Options {
		if opt.Value == value {
			m.cursor = i
			return
		}
	}
}

// Summary assembles the final determination, including commodity rows when
// the sub-flow ran.
func (m *checkModel) Summary() coverage.Summary {
	sum := coverage.BuildSummary(m.def, m.session)
	if m.walk != nil {
		sum.Commodities = coverage.CommodityLines(coverage.ResolveAll(m.walk.Commodities()))
	}
	return sum
}
