package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneysaving/internal/core"
)

func salary() core.Transaction {
	return core.Transaction{
		Title:   "Salary",
		Amount:  5000000,
		Type:    core.TypeIncome,
		Date:    core.NewDate(2024, 1, 1),
		Source:  "Bank",
		Purpose: "Gaji",
	}
}

func lunch() core.Transaction {
	return core.Transaction{
		Title:   "Lunch",
		Amount:  50000,
		Type:    core.TypeExpense,
		Date:    core.NewDate(2024, 1, 2),
		Source:  "Cash",
		Purpose: "Makanan",
	}
}

func mustAdd(t *testing.T, s *Store, tx core.Transaction) int64 {
	t.Helper()
	id, err := s.AddTransaction(context.Background(), tx)
	require.NoError(t, err)
	return id
}

func TestAddThenGet_ReturnsInsertedRecord(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, want := range []core.Transaction{salary(), lunch()} {
		id, err := s.AddTransaction(ctx, want)
		require.NoError(t, err)
		require.Positive(t, id)

		got, err := s.GetTransactionByID(ctx, id)
		require.NoError(t, err)

		want.ID = id
		assert.Equal(t, want, got)
	}
}

func TestAdd_AssignsIncreasingIDs(t *testing.T) {
	s := newTestStore(t)

	first := mustAdd(t, s, salary())
	second := mustAdd(t, s, lunch())
	require.NoError(t, s.DeleteTransaction(context.Background(), second))
	third := mustAdd(t, s, lunch())

	assert.EqualValues(t, 1, first)
	assert.EqualValues(t, 2, second)
	assert.EqualValues(t, 3, third, "ids are not reused after delete")
}

func TestAdd_StoresFieldsUnvalidated(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	odd := core.Transaction{Title: "", Amount: -3, Type: "transfer", Date: core.NewDate(2024, 5, 5)}
	id, err := s.AddTransaction(ctx, odd)
	require.NoError(t, err)

	got, err := s.GetTransactionByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, -3.0, got.Amount)
	assert.Equal(t, core.Type("transfer"), got.Type)
}

func TestGetTransactionByID_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetTransactionByID(context.Background(), 42)
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestUpdateTransaction_OverwritesRow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	id := mustAdd(t, s, salary())

	updated := lunch()
	updated.ID = id
	require.NoError(t, s.UpdateTransaction(ctx, updated))

	got, err := s.GetTransactionByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateTransaction_MissingIDIsNoop(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	mustAdd(t, s, salary())
	before, err := s.GetTransactions(ctx, ListOptions{})
	require.NoError(t, err)

	ghost := lunch()
	ghost.ID = 999
	require.NoError(t, s.UpdateTransaction(ctx, ghost))

	after, err := s.GetTransactions(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDeleteTransaction(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	id := mustAdd(t, s, salary())

	require.NoError(t, s.DeleteTransaction(ctx, id))
	_, err := s.GetTransactionByID(ctx, id)
	require.ErrorIs(t, err, core.ErrNotFound)

	require.NoError(t, s.DeleteTransaction(ctx, id), "deleting an absent id is a no-op")
}

func TestGetTransactions_OrderFilterLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rows := []core.Transaction{
		{Title: "a", Amount: 1, Type: core.TypeIncome, Date: core.NewDate(2024, 1, 1), Source: "Bank", Purpose: "Gaji"},
		{Title: "b", Amount: 2, Type: core.TypeExpense, Date: core.NewDate(2024, 3, 1), Source: "Cash", Purpose: "Makanan"},
		{Title: "c", Amount: 3, Type: core.TypeExpense, Date: core.NewDate(2024, 3, 1), Source: "Bank", Purpose: "Tagihan"},
		{Title: "d", Amount: 4, Type: core.TypeIncome, Date: core.NewDate(2024, 2, 1), Source: "bank", Purpose: "Bonus"},
	}
	for _, r := range rows {
		mustAdd(t, s, r)
	}

	all, err := s.GetTransactions(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "d", "a"}, titles(all))

	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		if prev.Date.Equal(cur.Date) {
			assert.Greater(t, prev.ID, cur.ID)
		} else {
			assert.True(t, prev.Date.After(cur.Date))
		}
	}

	bank, err := s.GetTransactions(ctx, ListOptions{Source: "Bank"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, titles(bank), "source match is exact and case-sensitive")
	assert.LessOrEqual(t, len(bank), len(all))

	limited, err := s.GetTransactions(ctx, ListOptions{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, titles(limited))

	both, err := s.GetTransactions(ctx, ListOptions{Source: "Bank", Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, titles(both))

	none, err := s.GetTransactions(ctx, ListOptions{Source: "E-Wallet"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func titles(txs []core.Transaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.Title
	}
	return out
}
