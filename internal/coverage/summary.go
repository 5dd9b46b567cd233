package coverage

import "github.com/amoreland/tiller/internal/flow"

// AnswerLine is one label-resolved answer row for summary rendering.
type AnswerLine struct {
	Question string
	Answer   string
}

// CommodityLine is one commodity row for summary rendering.
type CommodityLine struct {
	Name    string
	Outcome string
	Reason  string
}

// Summary is the printable record of a completed determination: the
// terminal result, its justifications, reminders, and the label-resolved
// answers in summary order. It is a pure rendering model with no behavior.
type Summary struct {
	Complete      bool
	ResultKey     string
	Label         string
	Text          string
	Tone          flow.Tone
	Provisional   bool
	Reasons       []string
	ReminderTitle string
	ReminderItems []string
	Answers       []AnswerLine
	Commodities   []CommodityLine
}

// BuildSummary assembles a Summary from a session. If the session is not
// positioned at a result node, the Summary has Complete=false and only the
// answers filled in; the outcome was never computed and must not be
// invented here.
func BuildSummary(def *flow.Definition, s *flow.Session) Summary {
	sum := Summary{Answers: answerLines(def, s.Answers())}

	node, ok := s.CurrentNode()
	if !ok {
		return sum
	}
	result, ok := node.(*flow.ResultNode)
	if !ok {
		return sum
	}
	res, ok := def.Result(result.ResultKey)
	if !ok {
		return sum
	}

	sum.Complete = true
	sum.ResultKey = result.ResultKey
	sum.Label = res.Label
	sum.Text = res.Summary
	sum.Tone = res.Tone
	sum.Provisional = s.Flag("provisional")
	sum.Reasons = ResultReasons(result.ResultKey, s.Answers(), s.Flags())
	sum.ReminderTitle = res.ReminderTitle
	sum.ReminderItems = res.ReminderItems
	return sum
}

// answerLines resolves recorded answers to display labels, ordered by the
// definition's summary order. Unanswered questions are skipped; answers
// whose value no longer matches an option fall back to the raw value.
func answerLines(def *flow.Definition, answers flow.Answers) []AnswerLine {
	var lines []AnswerLine
	for _, qid := range def.SummaryOrder {
		value, ok := answers[qid]
		if !ok {
			continue
		}
		node, ok := def.Node(qid)
		if !ok {
			continue
		}
		q, ok := node.(*flow.QuestionNode)
		if !ok {
			continue
		}
		label := value
		if l, ok := q.AnswerLabel(value); ok {
			label = l
		}
		lines = append(lines, AnswerLine{Question: q.Title, Answer: label})
	}
	return lines
}

// CommodityLines converts resolved commodities to summary rows.
func CommodityLines(commodities []Commodity) []CommodityLine {
	lines := make([]CommodityLine, len(commodities))
	for i, c := range commodities {
		line := CommodityLine{Name: c.Name, Reason: c.Reason}
		if c.Outcome != CommodityNone {
			line.Outcome = c.Outcome.Label()
		} else {
			line.Outcome = "No exclusion or exemption identified"
		}
		lines[i] = line
	}
	return lines
}
