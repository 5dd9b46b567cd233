package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amoreland/tiller/internal/cli/formatter"
)

func newStatusCmd(app *App) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the saved coverage status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if clear {
				if err := app.Status.ClearStatus(ctx); err != nil {
					return err
				}
				fmt.Println(formatter.Dim("Coverage status cleared."))
				return nil
			}

			view, err := app.Status.GetStatus(ctx)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatStatus(view))
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Delete the saved coverage status")

	return cmd
}
