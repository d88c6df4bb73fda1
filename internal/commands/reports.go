package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"moneysaving/internal/core"
)

func newTotalsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Show income, expense and balance across the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.svc.Totals(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), newTable(
				[]string{"", "Income", "Expense", "Balance"},
				[][]string{totalsRow("Total", t.Income, t.Expense, t.Balance)},
				1, 2, 3,
			))
			return nil
		},
	}
}

func newBalancesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show the balance of every source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			balances, err := a.svc.Balances(cmd.Context())
			if err != nil {
				return err
			}
			if len(balances) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No transactions.")
				return nil
			}

			rows := make([][]string, 0, len(balances))
			for _, b := range balances {
				rows = append(rows, totalsRow(b.Source, b.Income, b.Expense, b.Balance))
			}
			fmt.Fprintln(cmd.OutOrStdout(), newTable([]string{"Source", "Income", "Expense", "Balance"}, rows, 1, 2, 3))
			return nil
		},
	}
}

func newSourcesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List the sources in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := a.svc.Sources(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range sources {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

func newSummaryCommand(a *app) *cobra.Command {
	var (
		granularity string
		byPurpose   bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize income and expense per month, per year or per purpose",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if byPurpose {
				return a.purposeSummary(cmd)
			}

			g, err := core.ParseGranularity(granularity)
			if err != nil {
				return err
			}

			summaries, err := a.svc.Summaries(cmd.Context(), g)
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No transactions.")
				return nil
			}

			rows := make([][]string, 0, len(summaries))
			for _, p := range summaries {
				rows = append(rows, totalsRow(p.Period, p.Income, p.Expense, p.Balance))
			}
			fmt.Fprintln(cmd.OutOrStdout(), newTable([]string{"Period", "Income", "Expense", "Balance"}, rows, 1, 2, 3))
			return nil
		},
	}

	cmd.Flags().StringVarP(&granularity, "granularity", "g", string(core.Monthly), "month or year")
	cmd.Flags().BoolVar(&byPurpose, "by-purpose", false, "group by purpose instead of period")

	return cmd
}

func (a *app) purposeSummary(cmd *cobra.Command) error {
	totals, err := a.svc.Purposes(cmd.Context())
	if err != nil {
		return err
	}
	if len(totals) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No transactions.")
		return nil
	}

	rows := make([][]string, 0, len(totals))
	for _, p := range totals {
		rows = append(rows, []string{p.Type.String(), p.Purpose, core.FormatAmount(p.Total)})
	}
	fmt.Fprintln(cmd.OutOrStdout(), newTable([]string{"Type", "Purpose", "Total"}, rows, 2))
	return nil
}
