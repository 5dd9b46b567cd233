package cli

import (
	"github.com/spf13/cobra"

	"github.com/amoreland/tiller/internal/flow"
	"github.com/amoreland/tiller/internal/service"
)

// App holds references to all service interfaces used by CLI commands, plus
// the loaded flow definition the check wizard walks.
type App struct {
	Status    service.StatusService
	Records   service.RecordService
	Checklist service.ChecklistService
	Flow      *flow.Definition
}

// NewRootCmd creates the top-level "tiller" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tiller",
		Short: "FSMA Produce Safety Rule coverage checker and farm record keeper",
	}

	root.AddCommand(
		newCheckCmd(app),
		newStatusCmd(app),
		newRecordsCmd(app),
		newChecklistCmd(app),
		newSummaryCmd(app),
	)

	return root
}
