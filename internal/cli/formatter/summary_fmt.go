package formatter

import (
	"fmt"
	"strings"

	"github.com/amoreland/tiller/internal/coverage"
)

// FormatSummary renders a completed determination as a styled terminal block:
// result banner, justifications, reminders, and the resolved answers.
func FormatSummary(sum coverage.Summary) string {
	var b strings.Builder

	if !sum.Complete {
		b.WriteString(Dim("The coverage check was not completed; no result to show.\n"))
		return b.String()
	}

	banner := ToneStyle(sum.Tone).Bold(true).Render(sum.Label)
	if sum.Provisional {
		banner += "  " + StylePurple.Render("(provisional)")
	}
	b.WriteString(banner)
	b.WriteString("\n\n")
	b.WriteString(StyleFg.Render(sum.Text))
	b.WriteString("\n")

	if len(sum.Reasons) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Why"))
		b.WriteString("\n")
		for _, reason := range sum.Reasons {
			b.WriteString(Bullet(reason))
			b.WriteString("\n")
		}
	}

	if len(sum.ReminderItems) > 0 {
		b.WriteString("\n")
		b.WriteString(Header(sum.ReminderTitle))
		b.WriteString("\n")
		for _, item := range sum.ReminderItems {
			b.WriteString(Bullet(item))
			b.WriteString("\n")
		}
	}

	if len(sum.Commodities) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Commodities"))
		b.WriteString("\n")
		rows := make([][]string, 0, len(sum.Commodities))
		for _, c := range sum.Commodities {
			rows = append(rows, []string{Bold(c.Name), StyleFg.Render(c.Outcome)})
		}
		b.WriteString(RenderTable([]string{"NAME", "OUTCOME"}, rows))
	}

	if len(sum.Answers) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Your Answers"))
		b.WriteString("\n")
		for _, a := range sum.Answers {
			b.WriteString(fmt.Sprintf("%s\n  %s\n", Dim(a.Question), StyleFg.Render(a.Answer)))
		}
	}

	return b.String()
}

// FormatSummaryPlain renders the summary without styling, for writing to a
// file or piping.
func FormatSummaryPlain(sum coverage.Summary) string {
	var b strings.Builder

	if !sum.Complete {
		b.WriteString("The coverage check was not completed; no result to show.\n")
		return b.String()
	}

	b.WriteString("FSMA Produce Safety Rule Coverage Check\n")
	b.WriteString(strings.Repeat("=", 39))
	b.WriteString("\n\n")
	b.WriteString("Result: " + sum.Label)
	if sum.Provisional {
		b.WriteString(" (provisional)")
	}
	b.WriteString("\n\n")
	b.WriteString(sum.Text)
	b.WriteString("\n")

	if len(sum.Reasons) > 0 {
		b.WriteString("\nWhy:\n")
		for _, reason := range sum.Reasons {
			b.WriteString("  - " + reason + "\n")
		}
	}

	if len(sum.ReminderItems) > 0 {
		b.WriteString("\n" + sum.ReminderTitle + ":\n")
		for _, item := range sum.ReminderItems {
			b.WriteString("  - " + item + "\n")
		}
	}

	if len(sum.Commodities) > 0 {
		b.WriteString("\nCommodities:\n")
		for _, c := range sum.Commodities {
			b.WriteString(fmt.Sprintf("  %s: %s\n", c.Name, c.Outcome))
		}
	}

	if len(sum.Answers) > 0 {
		b.WriteString("\nYour answers:\n")
		for _, a := range sum.Answers {
			b.WriteString(fmt.Sprintf("  %s\n    %s\n", a.Question, a.Answer))
		}
	}

	b.WriteString("\nEducational tool; not legal advice.\n")
	return b.String()
}
