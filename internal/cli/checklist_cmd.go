package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amoreland/tiller/internal/cli/formatter"
)

func newChecklistCmd(app *App) *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Show the compliance checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			items, err := app.Checklist.List(ctx)
			if err != nil {
				return err
			}
			if section != "" {
				items, err = app.Checklist.ListBySection(ctx, section)
				if err != nil {
					return err
				}
			}
			fmt.Print(formatter.FormatChecklist(items))
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "Show a single section")

	cmd.AddCommand(newChecklistToggleCmd(app))

	return cmd
}

func newChecklistToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle a checklist item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			done, err := app.Checklist.Toggle(context.Background(), args[0])
			if err != nil {
				return err
			}
			if done {
				fmt.Println(formatter.StyleGreen.Render("Done: " + args[0]))
			} else {
				fmt.Println(formatter.Dim("Reopened: " + args[0]))
			}
			return nil
		},
	}
}
