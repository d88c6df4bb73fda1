package storage

import (
	"context"
	"fmt"
	"math"

	"moneysaving/internal/core"
)

// DeleteAllTransactions empties the table and restarts id numbering at 1.
func (s *Store) DeleteAllTransactions(ctx context.Context) error {
	db, err := s.Open(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return ioFailure("begin wipe", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM transactions`)
	if err != nil {
		return ioFailure("delete all transactions", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sqlite_sequence WHERE name = 'transactions'`); err != nil {
		return ioFailure("reset id sequence", err)
	}
	if err := tx.Commit(); err != nil {
		return ioFailure("commit wipe", err)
	}

	n, _ := res.RowsAffected()
	s.logger.WarnContext(ctx, "All transactions deleted", "rows", n)
	return nil
}

// ConvertAllAmounts multiplies every stored amount by rate in place.
// A rate that is not a finite positive number would break the amount > 0
// invariant for every row and is refused.
func (s *Store) ConvertAllAmounts(ctx context.Context, rate float64) error {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return fmt.Errorf("%w: %v", core.ErrInvalidRate, rate)
	}

	db, err := s.Open(ctx)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `UPDATE transactions SET amount = amount * ?`, rate)
	if err != nil {
		return ioFailure("convert amounts", err)
	}

	n, _ := res.RowsAffected()
	s.logger.InfoContext(ctx, "Amounts converted", "rate", rate, "rows", n)
	return nil
}

// ImportTransactions inserts records one at a time in order, each with a
// fresh id. It is not atomic: on failure the rows inserted so far stay
// committed and their count is returned alongside the error.
func (s *Store) ImportTransactions(ctx context.Context, records []core.Transaction) (int, error) {
	db, err := s.Open(ctx)
	if err != nil {
		return 0, err
	}

	imported := 0
	for i, rec := range records {
		if _, err := insert(ctx, db, rec); err != nil {
			s.logger.ErrorContext(ctx, "Import stopped", "record", i, "imported", imported, "error", err)
			return imported, ioFailure(fmt.Sprintf("import record %d", i), err)
		}
		imported++
	}

	s.logger.InfoContext(ctx, "Transactions imported", "count", imported)
	return imported, nil
}

// ImportTransactionsAtomic inserts records inside one SQL transaction:
// either every record is committed or none is.
func (s *Store) ImportTransactionsAtomic(ctx context.Context, records []core.Transaction) (int, error) {
	db, err := s.Open(ctx)
	if err != nil {
		return 0, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, ioFailure("begin import", err)
	}
	defer tx.Rollback()

	for i, rec := range records {
		if _, err := insert(ctx, tx, rec); err != nil {
			return 0, ioFailure(fmt.Sprintf("import record %d", i), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, ioFailure("commit import", err)
	}

	s.logger.InfoContext(ctx, "Transactions imported", "count", len(records), "atomic", true)
	return len(records), nil
}
