package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"moneysaving/internal/core"
)

// ListOptions narrows GetTransactions. Zero values mean "not provided".
type ListOptions struct {
	Source string
	Limit  int
}

const selectColumns = `id, title, amount, type, date, source, purpose`

const insertTransaction = `INSERT INTO transactions (title, amount, type, date, source, purpose)
VALUES (?, ?, ?, ?, ?, ?)`

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func scanTransaction(s scanner) (core.Transaction, error) {
	var (
		tx       core.Transaction
		typ, day string
	)
	if err := s.Scan(&tx.ID, &tx.Title, &tx.Amount, &typ, &day, &tx.Source, &tx.Purpose); err != nil {
		return core.Transaction{}, err
	}
	tx.Type = core.Type(typ)

	date, err := parseStoredDate(day)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("transaction %d: %w", tx.ID, err)
	}
	tx.Date = date

	return tx, nil
}

// parseStoredDate reads the date column. Rows written by older clients may
// carry a full ISO timestamp; only the calendar part is kept.
func parseStoredDate(s string) (time.Time, error) {
	if len(s) > len(time.DateOnly) {
		s = s[:len(time.DateOnly)]
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed date %q: %w", s, err)
	}
	return t, nil
}

func insert(ctx context.Context, ex execer, tx core.Transaction) (int64, error) {
	res, err := ex.ExecContext(ctx, insertTransaction,
		tx.Title,
		tx.Amount,
		string(tx.Type),
		core.FormatDate(tx.Date),
		tx.Source,
		tx.Purpose,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// AddTransaction inserts one row and returns the id the store assigned.
// Fields are written as given; callers validate.
func (s *Store) AddTransaction(ctx context.Context, tx core.Transaction) (int64, error) {
	db, err := s.Open(ctx)
	if err != nil {
		return 0, err
	}

	id, err := insert(ctx, db, tx)
	if err != nil {
		return 0, ioFailure("insert transaction", err)
	}

	s.logger.InfoContext(ctx, "Transaction added",
		"id", id,
		"type", tx.Type,
		"amount", tx.Amount,
		"source", tx.Source)

	return id, nil
}

// UpdateTransaction overwrites every field of the row with tx.ID.
// An unknown id is not an error.
func (s *Store) UpdateTransaction(ctx context.Context, tx core.Transaction) error {
	db, err := s.Open(ctx)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `UPDATE transactions
		SET title = ?, amount = ?, type = ?, date = ?, source = ?, purpose = ?
		WHERE id = ?`,
		tx.Title,
		tx.Amount,
		string(tx.Type),
		core.FormatDate(tx.Date),
		tx.Source,
		tx.Purpose,
		tx.ID,
	)
	if err != nil {
		return ioFailure("update transaction", err)
	}

	n, _ := res.RowsAffected()
	s.logger.InfoContext(ctx, "Transaction updated", "id", tx.ID, "rows", n)
	return nil
}

// DeleteTransaction removes the row with id, if any.
func (s *Store) DeleteTransaction(ctx context.Context, id int64) error {
	db, err := s.Open(ctx)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return ioFailure("delete transaction", err)
	}

	n, _ := res.RowsAffected()
	s.logger.InfoContext(ctx, "Transaction deleted", "id", id, "rows", n)
	return nil
}

// GetTransactionByID returns core.ErrNotFound when no row has id.
func (s *Store) GetTransactionByID(ctx context.Context, id int64) (core.Transaction, error) {
	db, err := s.Open(ctx)
	if err != nil {
		return core.Transaction{}, err
	}

	row := db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM transactions WHERE id = ?`, id)
	tx, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Transaction{}, core.ErrNotFound
		}
		return core.Transaction{}, ioFailure("get transaction", err)
	}

	return tx, nil
}

// GetTransactions returns rows newest first: date descending, then id descending.
func (s *Store) GetTransactions(ctx context.Context, opts ListOptions) ([]core.Transaction, error) {
	db, err := s.Open(ctx)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + selectColumns + ` FROM transactions`
	var args []any

	if opts.Source != "" {
		query += ` WHERE source = ?`
		args = append(args, opts.Source)
	}

	query += ` ORDER BY date DESC, id DESC`

	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, ioFailure("list transactions", err)
	}
	defer rows.Close()

	txs := []core.Transaction{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, ioFailure("scan transaction", err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, ioFailure("list transactions", err)
	}

	return txs, nil
}
