package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"moneysaving/internal/core"
	"moneysaving/internal/csvio"
	"moneysaving/internal/storage"
)

var errNotConfirmed = errors.New("refusing to wipe the ledger without --yes")

func newConvertCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <rate>",
		Short: "Multiply every amount by rate, e.g. to switch currency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := core.ParseRate(args[0])
			if err != nil {
				return err
			}
			if err := a.svc.Convert(cmd.Context(), rate); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Converted all amounts by %s\n", core.FormatAmount(rate))
			return nil
		},
	}
}

func newWipeCommand(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Delete every transaction and restart ids at 1",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errNotConfirmed
			}
			if err := a.svc.Wipe(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Ledger wiped")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deleting everything")

	return cmd
}

func newImportCommand(a *app) *cobra.Command {
	var atomic bool

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Append transactions from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			defer f.Close()

			records, err := csvio.Read(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			n, err := a.svc.Import(cmd.Context(), records, atomic)
			if err != nil {
				if n > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d transactions before failing\n", n, len(records))
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&atomic, "atomic", false, "import all rows or none")

	return cmd
}

func newExportCommand(a *app) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "export [file.csv]",
		Short: "Write transactions as CSV to a file or stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txs, err := a.svc.List(cmd.Context(), storage.ListOptions{Source: source})
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return csvio.Write(cmd.OutOrStdout(), txs)
			}
			if err := writeFile(args[0], txs); err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d transactions to %s\n", len(txs), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "only export this source")

	return cmd
}

func writeFile(path string, txs []core.Transaction) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return csvio.Write(f, txs)
}
