package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/amoreland/tiller/internal/cli/formatter"
	"github.com/amoreland/tiller/internal/domain"
	"github.com/amoreland/tiller/internal/importer"
)

func newRecordsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Manage produce safety records",
	}

	cmd.AddCommand(
		newRecordsListCmd(app),
		newRecordsAddCmd(app),
		newRecordsImportCmd(app),
		newRecordsShowCmd(app),
		newRecordsDeleteCmd(app),
	)

	return cmd
}

func newRecordsListCmd(app *App) *cobra.Command {
	var recType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var (
				records []*domain.Record
				err     error
			)
			if recType != "" {
				records, err = app.Records.ListByType(ctx, domain.RecordType(recType))
			} else {
				records, err = app.Records.List(ctx)
			}
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatRecords(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&recType, "type", "", "Filter by record type (training, soil, water, harvest, plan, cleaning)")

	return cmd
}

func newRecordsAddCmd(app *App) *cobra.Command {
	var recType, title, date, notes string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a record",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Interactive form when no title was given and a terminal is attached.
			if title == "" && (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) {
				if recType == "" {
					recType = string(domain.RecordTraining)
				}
				if err := recordForm(&recType, &title, &date, &notes).Run(); err != nil {
					return fmt.Errorf("reading record: %w", err)
				}
			}

			rec := &domain.Record{
				Type:  domain.RecordType(recType),
				Title: title,
				Notes: notes,
			}
			if date != "" {
				parsed, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid date %q: use YYYY-MM-DD", date)
				}
				rec.Date = parsed
			}

			if err := app.Records.Add(context.Background(), rec); err != nil {
				return err
			}
			fmt.Println(formatter.Dim("Record added: " + rec.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&recType, "type", "", "Record type (training, soil, water, harvest, plan, cleaning)")
	cmd.Flags().StringVar(&title, "title", "", "Record title")
	cmd.Flags().StringVar(&date, "date", "", "Record date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

func newRecordsImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import records from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadImportFile(args[0])
			if err != nil {
				return err
			}

			if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintf(os.Stderr, "  - %v\n", e)
				}
				return fmt.Errorf("import file has %d validation error(s)", len(errs))
			}

			records, err := importer.Convert(schema)
			if err != nil {
				return err
			}

			n, err := app.Records.ImportAll(context.Background(), records)
			if err != nil {
				return err
			}
			fmt.Println(formatter.Dim(fmt.Sprintf("Imported %d record(s).", n)))
			return nil
		},
	}
}

func newRecordsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one record in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := app.Records.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatRecord(rec))
			return nil
		},
	}
}

func newRecordsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Records.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println(formatter.Dim("Record deleted."))
			return nil
		},
	}
}
