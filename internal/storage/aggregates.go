package storage

import (
	"context"

	"moneysaving/internal/core"
)

// TOTAL() rather than SUM(): it yields 0.0 instead of NULL on an empty set.
const (
	incomeSum  = `TOTAL(CASE WHEN type = 'income' THEN amount ELSE 0 END)`
	expenseSum = `TOTAL(CASE WHEN type = 'expense' THEN amount ELSE 0 END)`
)

// GetUniqueSources returns every distinct source label, sorted.
func (s *Store) GetUniqueSources(ctx context.Context) ([]string, error) {
	db, err := s.Open(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT DISTINCT source FROM transactions ORDER BY source`)
	if err != nil {
		return nil, ioFailure("list sources", err)
	}
	defer rows.Close()

	sources := []string{}
	for rows.Next() {
		var src string
		if err := rows.Scan(&src); err != nil {
			return nil, ioFailure("scan source", err)
		}
		sources = append(sources, src)
	}
	if err := rows.Err(); err != nil {
		return nil, ioFailure("list sources", err)
	}

	return sources, nil
}

// GetTotals sums income and expense over the whole table.
func (s *Store) GetTotals(ctx context.Context) (core.Totals, error) {
	db, err := s.Open(ctx)
	if err != nil {
		return core.Totals{}, err
	}

	var income, expense float64
	err = db.QueryRowContext(ctx, `SELECT `+incomeSum+`, `+expenseSum+` FROM transactions`).
		Scan(&income, &expense)
	if err != nil {
		return core.Totals{}, ioFailure("calculate totals", err)
	}

	return core.NewTotals(income, expense), nil
}

// GetBalancesBySource groups every row by its exact source label.
func (s *Store) GetBalancesBySource(ctx context.Context) ([]core.SourceBalance, error) {
	db, err := s.Open(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT source, `+incomeSum+`, `+expenseSum+`
		FROM transactions
		GROUP BY source
		ORDER BY source`)
	if err != nil {
		return nil, ioFailure("balances by source", err)
	}
	defer rows.Close()

	balances := []core.SourceBalance{}
	for rows.Next() {
		var b core.SourceBalance
		if err := rows.Scan(&b.Source, &b.Income, &b.Expense); err != nil {
			return nil, ioFailure("scan balance", err)
		}
		b.Balance = b.Income - b.Expense
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, ioFailure("balances by source", err)
	}

	return balances, nil
}

// GetTotalsByPurpose sums amounts per (type, purpose), largest first within each type.
func (s *Store) GetTotalsByPurpose(ctx context.Context) ([]core.PurposeTotal, error) {
	db, err := s.Open(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT type, purpose, TOTAL(amount) AS total
		FROM transactions
		GROUP BY type, purpose
		ORDER BY type, total DESC, purpose`)
	if err != nil {
		return nil, ioFailure("totals by purpose", err)
	}
	defer rows.Close()

	totals := []core.PurposeTotal{}
	for rows.Next() {
		var (
			p   core.PurposeTotal
			typ string
		)
		if err := rows.Scan(&typ, &p.Purpose, &p.Total); err != nil {
			return nil, ioFailure("scan purpose total", err)
		}
		p.Type = core.Type(typ)
		totals = append(totals, p)
	}
	if err := rows.Err(); err != nil {
		return nil, ioFailure("totals by purpose", err)
	}

	return totals, nil
}

// GetPeriodSummaries buckets rows by month or year of their date, newest bucket first.
func (s *Store) GetPeriodSummaries(ctx context.Context, g core.Granularity) ([]core.PeriodSummary, error) {
	db, err := s.Open(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT substr(date, 1, ?) AS period, `+incomeSum+`, `+expenseSum+`
		FROM transactions
		GROUP BY period
		ORDER BY period DESC`, g.PrefixLen())
	if err != nil {
		return nil, ioFailure("period summaries", err)
	}
	defer rows.Close()

	summaries := []core.PeriodSummary{}
	for rows.Next() {
		var p core.PeriodSummary
		if err := rows.Scan(&p.Period, &p.Income, &p.Expense); err != nil {
			return nil, ioFailure("scan period summary", err)
		}
		p.Balance = p.Income - p.Expense
		summaries = append(summaries, p)
	}
	if err := rows.Err(); err != nil {
		return nil, ioFailure("period summaries", err)
	}

	return summaries, nil
}

// CountTransactions returns the number of rows.
func (s *Store) CountTransactions(ctx context.Context) (int, error) {
	db, err := s.Open(ctx)
	if err != nil {
		return 0, err
	}

	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&n); err != nil {
		return 0, ioFailure("count transactions", err)
	}

	return n, nil
}
