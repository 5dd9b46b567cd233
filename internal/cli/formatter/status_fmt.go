package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/amoreland/tiller/internal/contract"
)

// FormatStatus formats the persisted coverage status as a styled CLI block.
func FormatStatus(view *contract.StatusView) string {
	var b strings.Builder

	b.WriteString(Header("Coverage Status"))
	b.WriteString("\n\n")

	if !view.Determined {
		b.WriteString(Dim("Not yet determined. Run `tiller check` to walk through the coverage questions.\n"))
		return b.String()
	}

	b.WriteString(CoverageIndicator(view.IsCovered, view.IsExempt))
	b.WriteString("  ")
	b.WriteString(Bold(view.OutcomeLabel))
	if view.Provisional {
		b.WriteString("  ")
		b.WriteString(StylePurple.Render("(provisional)"))
	}
	b.WriteString("\n\n")

	rows := [][]string{
		{"Covered", yesNo(view.IsCovered)},
		{"Exempt", yesNo(view.IsExempt)},
	}
	if view.IsExempt {
		rows = append(rows, []string{"Exemption type", string(view.ExemptionType)})
	}
	if view.AnnualSales != "" {
		rows = append(rows, []string{"Annual sales band", view.AnnualSales})
	}
	if !view.UpdatedAt.IsZero() {
		rows = append(rows, []string{"Last updated", view.UpdatedAt.Format("2006-01-02 15:04 MST")})
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%-18s", row[0])), StyleFg.Render(row[1])))
	}

	if len(view.Details) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Recorded Answers"))
		b.WriteString("\n")
		keys := make([]string, 0, len(view.Details))
		for k := range view.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%-18s", k)), StyleFg.Render(view.Details[k])))
		}
	}

	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
