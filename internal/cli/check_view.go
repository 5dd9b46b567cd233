package cli

import (
	"fmt"
	"strings"

	"github.com/amoreland/tiller/internal/cli/formatter"
	"github.com/amoreland/tiller/internal/flow"
)

func (m *checkModel) View() string {
	if m.mode == modeCommodity {
		return m.viewCommodity()
	}

	node, ok := m.session.CurrentNode()
	if !ok {
		return formatter.Dim("flow definition fault: current node missing")
	}

	switch n := node.(type) {
	case *flow.IntroNode:
		return m.viewIntro(n)
	case *flow.QuestionNode:
		return m.viewQuestion(n)
	case *flow.HelperNode:
		return m.viewHelper(n)
	case *flow.ResultNode:
		return m.viewResult()
	default:
		panic(fmt.Sprintf("unknown node type %T", node))
	}
}

func (m *checkModel) viewIntro(n *flow.IntroNode) string {
	var b strings.Builder
	b.WriteString(formatter.Header(n.Title))
	b.WriteString("\n\n")
	for _, line := range n.Body {
		b.WriteString(formatter.StyleFg.Render(line))
		b.WriteString("\n\n")
	}
	b.WriteString(m.renderChoices(actionLabels(n.Actions)))
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m *checkModel) viewQuestion(n *flow.QuestionNode) string {
	var b strings.Builder
	if n.Step > 0 && m.def.TotalSteps > 0 {
		b.WriteString(formatter.Dim(fmt.Sprintf("Step %d of %d", n.Step, m.def.TotalSteps)))
		b.WriteString("\n\n")
	}
	b.WriteString(formatter.Bold(n.Title))
	b.WriteString("\n\n")
	for _, line := range n.Prompt {
		b.WriteString(formatter.StyleFg.Render(line))
		b.WriteString("\n")
	}
	if len(n.Prompt) > 0 {
		b.WriteString("\n")
	}
	if n.HelperText != "" {
		b.WriteString(formatter.Dim(n.HelperText))
		b.WriteString("\n\n")
	}
	b.WriteString(m.renderChoices(optionLabels(n.Options)))
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m *checkModel) viewHelper(n *flow.HelperNode) string {
	var b strings.Builder
	b.WriteString(formatter.StyleBlue.Bold(true).Render(n.Title))
	b.WriteString("\n\n")
	for _, line := range n.Body {
		b.WriteString(formatter.Bullet(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.renderChoices(actionLabels(n.Actions)))
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m *checkModel) viewResult() string {
	var b strings.Builder
	b.WriteString(formatter.RenderBox("", formatter.FormatSummary(m.Summary())))
	b.WriteString("\n")
	b.WriteString(formatter.Dim("enter: save this result   q: quit without saving   r: restart"))
	b.WriteString("\n")
	return b.String()
}

func (m *checkModel) viewCommodity() string {
	commodity, step := m.walk.Current()

	var b strings.Builder
	b.WriteString(formatter.Dim(fmt.Sprintf("Commodity %d of %d", m.walk.Index()+1, m.walk.Len())))
	b.WriteString("\n\n")
	b.WriteString(formatter.Bold(step.Question(commodity.Name)))
	b.WriteString("\n\n")
	b.WriteString(m.renderChoices([]string{"Yes", "No"}))
	b.WriteString(m.renderHelp())
	return b.String()
}

// renderChoices renders the selectable entries with a cursor marker.
func (m *checkModel) renderChoices(labels []string) string {
	var b strings.Builder
	for i, label := range labels {
		if i == m.cursor {
			b.WriteString(formatter.StyleHeader.Render("> "))
			b.WriteString(formatter.StyleGreen.Render(label))
		} else {
			b.WriteString("  ")
			b.WriteString(formatter.StyleFg.Render(label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderHelp renders the key hint line; back is hidden when there is
// nothing to go back to.
func (m *checkModel) renderHelp() string {
	hints := []string{"↑/↓ move", "enter confirm"}
	if m.canGoBack() {
		hints = append(hints, "b back")
	}
	hints = append(hints, "r restart", "q quit")
	return "\n" + formatter.Dim(strings.Join(hints, "   ")) + "\n"
}

func (m *checkModel) canGoBack() bool {
	if m.mode == modeCommodity {
		// Backing out of the first commodity question still exits to the
		// graph, which always has history at that point.
		return true
	}
	return m.session.CanGoBack()
}

func actionLabels(actions []flow.Action) []string {
	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = a.Label
	}
	return labels
}

func optionLabels(options []flow.Option) []string {
	labels := make([]string, len(options))
	for i, o := range options {
		labels[i] = o.Label
	}
	return labels
}
