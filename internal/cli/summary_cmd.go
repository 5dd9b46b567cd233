package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amoreland/tiller/internal/cli/formatter"
	"github.com/amoreland/tiller/internal/contract"
)

func newSummaryCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Render the saved coverage status as a printable document",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Status.GetStatus(context.Background())
			if err != nil {
				return err
			}
			if !view.Determined {
				fmt.Println(formatter.Dim("Not yet determined. Run `tiller check` first."))
				return nil
			}

			doc := statusDocument(view)
			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(doc), 0644); err != nil {
					return fmt.Errorf("writing summary file: %w", err)
				}
				fmt.Println(formatter.Dim("Summary written to " + outPath))
				return nil
			}
			fmt.Print(doc)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the document to this file instead of stdout")

	return cmd
}

// statusDocument renders the saved status as unstyled printable text.
func statusDocument(view *contract.StatusView) string {
	var b strings.Builder

	b.WriteString("FSMA Produce Safety Rule Coverage Summary\n")
	b.WriteString(strings.Repeat("=", 41))
	b.WriteString("\n\n")
	b.WriteString("Result: " + view.OutcomeLabel)
	if view.Provisional {
		b.WriteString(" (provisional)")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Covered: %v\nExempt: %v\n", view.IsCovered, view.IsExempt))
	if view.IsExempt {
		b.WriteString("Exemption type: " + string(view.ExemptionType) + "\n")
	}
	if view.AnnualSales != "" {
		b.WriteString("Annual sales band: " + view.AnnualSales + "\n")
	}
	if !view.UpdatedAt.IsZero() {
		b.WriteString("Determined: " + view.UpdatedAt.Format("2006-01-02 15:04 MST") + "\n")
	}

	if len(view.Details) > 0 {
		b.WriteString("\nRecorded answers:\n")
		keys := make([]string, 0, len(view.Details))
		for k := range view.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf("  %s: %s\n", k, view.Details[k]))
		}
	}

	b.WriteString("\nEducational tool; not legal advice.\n")
	return b.String()
}
