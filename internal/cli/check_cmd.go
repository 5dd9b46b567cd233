package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/amoreland/tiller/internal/cli/formatter"
	"github.com/amoreland/tiller/internal/contract"
	"github.com/amoreland/tiller/internal/coverage"
)

// commoditiesValue parses the --commodities flag into commodity values as it
// is set.
type commoditiesValue struct {
	raw   string
	items []coverage.Commodity
}

var _ pflag.Value = (*commoditiesValue)(nil)

func (v *commoditiesValue) String() string { return v.raw }
func (v *commoditiesValue) Type() string   { return "commodities" }

func (v *commoditiesValue) Set(s string) error {
	v.raw = s
	v.items = parseCommodities(s)
	return nil
}

func newCheckCmd(app *App) *cobra.Command {
	var commodityList commoditiesValue
	var multi bool
	var outPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the interactive coverage check",
		Long: "Walks through the FSMA Produce Safety Rule coverage questions one at a " +
			"time. With --commodities (or --multi), the produce questions repeat per " +
			"commodity and the result aggregates across all of them.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
				return fmt.Errorf("check is interactive and requires a terminal")
			}

			if multi && len(commodityList.items) == 0 {
				var listed string
				form := commodityListForm(&listed)
				if err := form.Run(); err != nil {
					return fmt.Errorf("reading commodity list: %w", err)
				}
				_ = commodityList.Set(listed)
			}

			model := newCheckModel(app.Flow, commodityList.items)
			program := tea.NewProgram(model, tea.WithAltScreen())
			final, err := program.Run()
			if err != nil {
				return fmt.Errorf("running wizard: %w", err)
			}

			m, ok := final.(*checkModel)
			if !ok {
				return fmt.Errorf("unexpected final model %T", final)
			}
			if m.aborted {
				fmt.Println(formatter.Dim("Cancelled."))
				return nil
			}

			sum := m.Summary()
			fmt.Print(formatter.FormatSummary(sum))
			if !sum.Complete {
				return nil
			}

			if m.save {
				view, err := app.Status.SaveOutcome(context.Background(), saveRequestFor(sum, m))
				if err != nil {
					return fmt.Errorf("saving status: %w", err)
				}
				fmt.Println(formatter.Dim("Saved. Last updated " + view.UpdatedAt.Format("2006-01-02 15:04 MST") + "."))
			}

			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(formatter.FormatSummaryPlain(sum)), 0644); err != nil {
					return fmt.Errorf("writing summary file: %w", err)
				}
				fmt.Println(formatter.Dim("Summary written to " + outPath))
			}
			return nil
		},
	}

	cmd.Flags().Var(&commodityList, "commodities", "Comma-separated commodity list for the per-commodity sub-flow")
	cmd.Flags().BoolVar(&multi, "multi", false, "Prompt for a commodity list before the wizard")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write a plain-text summary to this file")

	return cmd
}

// parseCommodities splits a comma-separated list into commodity values with
// fresh IDs. Empty segments are dropped.
func parseCommodities(s string) []coverage.Commodity {
	var out []coverage.Commodity
	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		out = append(out, coverage.Commodity{ID: uuid.New().String(), Name: name})
	}
	return out
}

// saveRequestFor converts a completed summary into the persistence request.
func saveRequestFor(sum coverage.Summary, m *checkModel) contract.SaveOutcomeRequest {
	outcome, _ := coverage.OutcomeTypeForResult(sum.ResultKey, m.session.Answers())

	answers := map[string]string{}
	for k, v := range m.session.Answers() {
		answers[k] = v
	}
	for _, c := range sum.Commodities {
		answers["commodity:"+c.Name] = c.Outcome
	}

	// The sales band is implied by the answers that drove the outcome.
	annualSales := ""
	switch {
	case answers["q2"] == "yes":
		annualSales = "under_25k"
	case answers["q6"] == "yes":
		annualSales = "under_500k"
	}

	return contract.SaveOutcomeRequest{
		OutcomeType:  string(outcome),
		OutcomeLabel: sum.Label,
		Provisional:  sum.Provisional,
		AnnualSales:  annualSales,
		Reasons:      sum.Reasons,
		Answers:      answers,
	}
}
