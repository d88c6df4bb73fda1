package ledger_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"moneysaving/internal/core"
	"moneysaving/internal/ledger"
	"moneysaving/internal/storage"
)

func newService(t *testing.T) (*ledger.Service, *ledger.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := ledger.NewMockRepository(ctrl)
	svc := ledger.NewService(repo, ledger.Options{
		CacheSize: 8,
		CacheTTL:  time.Hour,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return svc, repo
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

func TestService_Add(t *testing.T) {
	type testCase struct {
		name      string
		tx        core.Transaction
		setupMock func(m *ledger.MockRepository)
		wantErr   error
		wantID    int64
	}

	invalid := lunch()
	invalid.Amount = 0

	tests := []testCase{
		{
			name: "Success",
			tx:   lunch(),
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().AddTransaction(gomock.Any(), lunch()).Return(int64(7), nil)
			},
			wantID: 7,
		},
		{
			name:    "ValidationStopsBeforeStore",
			tx:      invalid,
			wantErr: core.ErrInvalidAmount,
		},
		{
			name: "StoreError",
			tx:   lunch(),
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().AddTransaction(gomock.Any(), gomock.Any()).Return(int64(0), storage.ErrIOFailure)
			},
			wantErr: storage.ErrIOFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := svc.Add(context.Background(), tt.tx)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
			assert.Equal(t, tt.tx.Title, got.Title)
		})
	}
}

func TestService_TotalsAreCachedUntilWrite(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().GetTotals(gomock.Any()).Return(core.NewTotals(100, 40), nil),
		repo.EXPECT().DeleteTransaction(gomock.Any(), int64(3)).Return(nil),
		repo.EXPECT().GetTotals(gomock.Any()).Return(core.NewTotals(100, 0), nil),
	)

	first, err := svc.Totals(ctx)
	require.NoError(t, err)
	cached, err := svc.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, cached)
	assert.Equal(t, 60.0, cached.Balance)

	require.NoError(t, svc.Delete(ctx, 3))

	fresh, err := svc.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100.0, fresh.Balance)
}

func TestService_TotalsReadDuringWriteIsNotCached(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	reading := make(chan struct{})
	resume := make(chan struct{})
	income := lunch()
	income.Type = core.TypeIncome
	income.Amount = 100

	gomock.InOrder(
		repo.EXPECT().GetTotals(gomock.Any()).DoAndReturn(func(context.Context) (core.Totals, error) {
			close(reading)
			<-resume
			return core.NewTotals(0, 0), nil
		}),
		repo.EXPECT().AddTransaction(gomock.Any(), income).Return(int64(1), nil),
		repo.EXPECT().GetTotals(gomock.Any()).Return(core.NewTotals(100, 0), nil),
	)

	done := make(chan core.Totals)
	go func() {
		before, err := svc.Totals(ctx)
		assert.NoError(t, err)
		done <- before
	}()

	<-reading
	_, err := svc.Add(ctx, income)
	require.NoError(t, err)
	close(resume)
	assert.Equal(t, 0.0, (<-done).Income)

	after, err := svc.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100.0, after.Income)
}

func TestService_BalancesPropagateErrors(t *testing.T) {
	svc, repo := newService(t)
	repo.EXPECT().GetBalancesBySource(gomock.Any()).Return(nil, storage.ErrIOFailure)

	got, err := svc.Balances(context.Background())
	require.ErrorIs(t, err, storage.ErrIOFailure)
	assert.Nil(t, got)
}

func TestService_SourcesReturnsCopy(t *testing.T) {
	svc, repo := newService(t)
	repo.EXPECT().GetUniqueSources(gomock.Any()).Return([]string{"Bank", "Cash"}, nil).Times(1)

	first, err := svc.Sources(context.Background())
	require.NoError(t, err)
	first[0] = "mutated"

	second, err := svc.Sources(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Bank", "Cash"}, second)
}

func TestService_UpdateValidates(t *testing.T) {
	svc, _ := newService(t)
	tx := lunch()
	tx.ID = 1
	tx.Title = " "

	require.ErrorIs(t, svc.Update(context.Background(), tx), core.ErrEmptyTitle)
}

func TestService_Import(t *testing.T) {
	records := []core.Transaction{lunch(), lunch()}

	t.Run("InvalidRecordWritesNothing", func(t *testing.T) {
		svc, _ := newService(t)
		bad := append([]core.Transaction{}, records...)
		bad[1].Source = ""

		n, err := svc.Import(context.Background(), bad, false)
		require.ErrorIs(t, err, core.ErrEmptySource)
		assert.Contains(t, err.Error(), "record 2")
		assert.Zero(t, n)
	})

	t.Run("NonAtomic", func(t *testing.T) {
		svc, repo := newService(t)
		repo.EXPECT().ImportTransactions(gomock.Any(), records).Return(1, storage.ErrIOFailure)

		n, err := svc.Import(context.Background(), records, false)
		require.ErrorIs(t, err, storage.ErrIOFailure)
		assert.Equal(t, 1, n)
	})

	t.Run("Atomic", func(t *testing.T) {
		svc, repo := newService(t)
		repo.EXPECT().ImportTransactionsAtomic(gomock.Any(), records).Return(2, nil)

		n, err := svc.Import(context.Background(), records, true)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("Empty", func(t *testing.T) {
		svc, _ := newService(t)
		n, err := svc.Import(context.Background(), nil, true)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestService_ConvertAndWipeInvalidate(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().GetUniqueSources(gomock.Any()).Return([]string{"Bank"}, nil),
		repo.EXPECT().ConvertAllAmounts(gomock.Any(), 0.5).Return(errors.New("disk full")),
		repo.EXPECT().GetUniqueSources(gomock.Any()).Return([]string{"Bank"}, nil),
		repo.EXPECT().DeleteAllTransactions(gomock.Any()).Return(nil),
		repo.EXPECT().GetUniqueSources(gomock.Any()).Return([]string{}, nil),
	)

	_, err := svc.Sources(ctx)
	require.NoError(t, err)
	require.Error(t, svc.Convert(ctx, 0.5))

	_, err = svc.Sources(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Wipe(ctx))

	got, err := svc.Sources(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_Integration(t *testing.T) {
	store := storage.New(t.TempDir()+"/moneysaving.db", storage.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	t.Cleanup(func() { store.Close() })
	svc := ledger.NewService(store, ledger.Options{CacheSize: 4, CacheTTL: time.Minute})
	ctx := context.Background()

	added, err := svc.Add(ctx, lunch())
	require.NoError(t, err)
	assert.EqualValues(t, 1, added.ID)

	totals, err := svc.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, core.Totals{Income: 0, Expense: 50000, Balance: -50000}, totals)

	_, err = svc.Get(ctx, 99)
	require.ErrorIs(t, err, core.ErrNotFound)
}
