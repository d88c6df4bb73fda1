package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"moneysaving/internal/core"
	"moneysaving/internal/storage"
)

// transactionFlags are shared by add and edit.
type transactionFlags struct {
	title   string
	amount  string
	typ     string
	date    string
	source  string
	purpose string
}

func (f *transactionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "short description")
	cmd.Flags().StringVar(&f.amount, "amount", "", "positive amount, e.g. 50000 or 12,50")
	cmd.Flags().StringVar(&f.typ, "type", "expense", "income or expense")
	cmd.Flags().StringVar(&f.date, "date", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&f.source, "source", "", "account the money moved through, e.g. Bank")
	cmd.Flags().StringVar(&f.purpose, "purpose", "", "category, e.g. Makanan")
}

// apply overwrites the fields of tx whose flags were set on the command line.
func (f *transactionFlags) apply(cmd *cobra.Command, tx *core.Transaction) error {
	changed := cmd.Flags().Changed

	if changed("title") {
		tx.Title = strings.TrimSpace(f.title)
	}
	if changed("amount") {
		amount, err := core.ParseAmount(f.amount)
		if err != nil {
			return fmt.Errorf("--amount %q: %w", f.amount, err)
		}
		tx.Amount = amount
	}
	if changed("type") || tx.Type == "" {
		typ, err := core.ParseType(f.typ)
		if err != nil {
			return err
		}
		tx.Type = typ
	}
	if changed("date") {
		date, err := core.ParseDate(f.date)
		if err != nil {
			return err
		}
		tx.Date = date
	}
	if changed("source") {
		tx.Source = strings.TrimSpace(f.source)
	}
	if changed("purpose") {
		tx.Purpose = strings.TrimSpace(f.purpose)
	}
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid transaction id %q", s)
	}
	return id, nil
}

func newAddCommand(a *app) *cobra.Command {
	var f transactionFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			tx := core.Transaction{Date: core.NewDate(now.Year(), int(now.Month()), now.Day())}
			if err := f.apply(cmd, &tx); err != nil {
				return err
			}

			created, err := a.svc.Add(cmd.Context(), tx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added transaction #%d\n", created.ID)
			return nil
		},
	}

	f.register(cmd)
	for _, name := range []string{"title", "amount", "source", "purpose"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newListCommand(a *app) *cobra.Command {
	var opts storage.ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}

			txs, err := a.svc.List(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if len(txs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No transactions.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), transactionTable(txs))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Source, "source", "", "only list this source")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "maximum rows to show (0 for all)")

	return cmd
}

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			tx, err := a.svc.Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("transaction #%d: %w", id, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:      %d\n", tx.ID)
			fmt.Fprintf(out, "Title:   %s\n", tx.Title)
			fmt.Fprintf(out, "Amount:  %s\n", core.FormatAmount(tx.Amount))
			fmt.Fprintf(out, "Type:    %s\n", tx.Type)
			fmt.Fprintf(out, "Date:    %s\n", core.FormatDate(tx.Date))
			fmt.Fprintf(out, "Source:  %s\n", tx.Source)
			fmt.Fprintf(out, "Purpose: %s\n", tx.Purpose)
			return nil
		},
	}
}

func newEditCommand(a *app) *cobra.Command {
	var f transactionFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			tx, err := a.svc.Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("transaction #%d: %w", id, err)
			}
			if err := f.apply(cmd, &tx); err != nil {
				return err
			}
			if err := a.svc.Update(cmd.Context(), tx); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated transaction #%d\n", id)
			return nil
		},
	}

	f.register(cmd)

	return cmd
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.svc.Delete(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted transaction #%d\n", id)
			return nil
		},
	}
}
