package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/amoreland/tiller/internal/domain"
)

// FormatRecords renders the record list as a table.
func FormatRecords(records []*domain.Record) string {
	var b strings.Builder

	b.WriteString(Header("Records"))
	b.WriteString("\n\n")

	if len(records) == 0 {
		b.WriteString(Dim("No records yet. Add one with `tiller records add`.\n"))
		return b.String()
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			Dim(shortID(r.ID)),
			StyleBlue.Render(string(r.Type)),
			Bold(r.Title),
			StyleFg.Render(r.Date.Format("2006-01-02")),
		})
	}
	b.WriteString(RenderTable([]string{"ID", "TYPE", "TITLE", "DATE"}, rows))
	return b.String()
}

// FormatRecord renders a single record in detail.
func FormatRecord(r *domain.Record) string {
	var b strings.Builder

	b.WriteString(Header(r.Title))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%-10s", "ID")), StyleFg.Render(r.ID)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%-10s", "Type")), StyleBlue.Render(string(r.Type))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%-10s", "Date")), StyleFg.Render(r.Date.Format("2006-01-02"))))

	if len(r.Data) > 0 {
		keys := make([]string, 0, len(r.Data))
		for k := range r.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%-10s", k)), StyleFg.Render(r.Data[k])))
		}
	}

	if r.Notes != "" {
		b.WriteString("\n")
		b.WriteString(StyleFg.Render(r.Notes))
		b.WriteString("\n")
	}

	return b.String()
}

// shortID truncates a uuid for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
