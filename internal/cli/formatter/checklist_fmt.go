package formatter

import (
	"fmt"
	"strings"

	"github.com/amoreland/tiller/internal/domain"
)

// FormatChecklist renders checklist items grouped by section, preserving
// the input order within each section.
func FormatChecklist(items []*domain.ChecklistItem) string {
	var b strings.Builder

	b.WriteString(Header("Compliance Checklist"))
	b.WriteString("\n\n")

	if len(items) == 0 {
		b.WriteString(Dim("Checklist is empty. Save a coverage result with `tiller check` to seed it.\n"))
		return b.String()
	}

	var sections []string
	bySection := map[string][]*domain.ChecklistItem{}
	for _, item := range items {
		if _, seen := bySection[item.Section]; !seen {
			sections = append(sections, item.Section)
		}
		bySection[item.Section] = append(bySection[item.Section], item)
	}

	done := 0
	for _, section := range sections {
		b.WriteString(StyleHeader.Render(strings.ToUpper(section)))
		b.WriteString("\n")
		for _, item := range bySection[section] {
			if item.Done {
				done++
			}
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				Checkbox(item.Done), StyleFg.Render(item.Title), Dim("("+item.ID+")")))
		}
		b.WriteString("\n")
	}

	b.WriteString(Dim(fmt.Sprintf("%d of %d complete", done, len(items))))
	b.WriteString("\n")
	return b.String()
}
