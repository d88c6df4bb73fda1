// Package ledger is the caller-side layer over the ledger store: it
// validates input before it reaches the store and caches the aggregates
// the overview screens poll.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"moneysaving/internal/cache"
	"moneysaving/internal/core"
	"moneysaving/internal/storage"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	Ping(ctx context.Context) error

	AddTransaction(ctx context.Context, tx core.Transaction) (int64, error)
	UpdateTransaction(ctx context.Context, tx core.Transaction) error
	DeleteTransaction(ctx context.Context, id int64) error
	GetTransactionByID(ctx context.Context, id int64) (core.Transaction, error)
	GetTransactions(ctx context.Context, opts storage.ListOptions) ([]core.Transaction, error)
	CountTransactions(ctx context.Context) (int, error)

	GetUniqueSources(ctx context.Context) ([]string, error)
	GetTotals(ctx context.Context) (core.Totals, error)
	GetBalancesBySource(ctx context.Context) ([]core.SourceBalance, error)
	GetTotalsByPurpose(ctx context.Context) ([]core.PurposeTotal, error)
	GetPeriodSummaries(ctx context.Context, g core.Granularity) ([]core.PeriodSummary, error)

	DeleteAllTransactions(ctx context.Context) error
	ConvertAllAmounts(ctx context.Context, rate float64) error
	ImportTransactions(ctx context.Context, records []core.Transaction) (int, error)
	ImportTransactionsAtomic(ctx context.Context, records []core.Transaction) (int, error)
}

const (
	keyTotals   = "totals"
	keyBalances = "balances"
	keySources  = "sources"
)

type Options struct {
	CacheSize int
	CacheTTL  time.Duration
	Logger    *slog.Logger
}

type Service struct {
	repo   Repository
	logger *slog.Logger

	// gen counts invalidations; an aggregate read before a write is never cached after it.
	mu  sync.Mutex
	gen uint64

	totals   *cache.LRUCache[core.Totals]
	balances *cache.LRUCache[[]core.SourceBalance]
	sources  *cache.LRUCache[[]string]
}

func NewService(repo Repository, opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Service{
		repo:     repo,
		logger:   opts.Logger,
		totals:   cache.NewLRUCache[core.Totals](opts.CacheSize, opts.CacheTTL),
		balances: cache.NewLRUCache[[]core.SourceBalance](opts.CacheSize, opts.CacheTTL),
		sources:  cache.NewLRUCache[[]string](opts.CacheSize, opts.CacheTTL),
	}
}

// Caches exposes the aggregate caches for periodic expiry sweeps.
func (s *Service) Caches() []cache.Cleaner {
	return []cache.Cleaner{s.totals, s.balances, s.sources}
}

func (s *Service) invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.totals.Purge()
	s.balances.Purge()
	s.sources.Purge()
}

func (s *Service) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// storeIfCurrent runs set only when no write has happened since gen was taken.
func (s *Service) storeIfCurrent(gen uint64, set func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen == gen {
		set()
	}
}

// Ready reports whether the underlying store can be used.
func (s *Service) Ready(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// Add validates tx and stores it, returning it with its new id.
func (s *Service) Add(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}

	id, err := s.repo.AddTransaction(ctx, tx)
	s.invalidate()
	if err != nil {
		return core.Transaction{}, fmt.Errorf("add transaction: %w", err)
	}

	tx.ID = id
	return tx, nil
}

func (s *Service) Update(ctx context.Context, tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	err := s.repo.UpdateTransaction(ctx, tx)
	s.invalidate()
	if err != nil {
		return fmt.Errorf("update transaction %d: %w", tx.ID, err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.repo.DeleteTransaction(ctx, id)
	s.invalidate()
	if err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id int64) (core.Transaction, error) {
	return s.repo.GetTransactionByID(ctx, id)
}

func (s *Service) List(ctx context.Context, opts storage.ListOptions) ([]core.Transaction, error) {
	return s.repo.GetTransactions(ctx, opts)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.CountTransactions(ctx)
}

func (s *Service) Totals(ctx context.Context) (core.Totals, error) {
	if t, ok := s.totals.Get(keyTotals); ok {
		return t, nil
	}

	gen := s.generation()
	t, err := s.repo.GetTotals(ctx)
	if err != nil {
		return core.Totals{}, fmt.Errorf("get totals: %w", err)
	}
	s.storeIfCurrent(gen, func() { s.totals.Set(keyTotals, t) })
	return t, nil
}

// Balances returns per-source balances. Failures are returned, never
// replaced by an empty list, so an empty result always means an empty ledger.
func (s *Service) Balances(ctx context.Context) ([]core.SourceBalance, error) {
	if b, ok := s.balances.Get(keyBalances); ok {
		return slices.Clone(b), nil
	}

	gen := s.generation()
	b, err := s.repo.GetBalancesBySource(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to read balances by source", "error", err)
		return nil, fmt.Errorf("get balances: %w", err)
	}
	s.storeIfCurrent(gen, func() { s.balances.Set(keyBalances, b) })
	return slices.Clone(b), nil
}

func (s *Service) Sources(ctx context.Context) ([]string, error) {
	if src, ok := s.sources.Get(keySources); ok {
		return slices.Clone(src), nil
	}

	gen := s.generation()
	src, err := s.repo.GetUniqueSources(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to read sources", "error", err)
		return nil, fmt.Errorf("get sources: %w", err)
	}
	s.storeIfCurrent(gen, func() { s.sources.Set(keySources, src) })
	return slices.Clone(src), nil
}

func (s *Service) Purposes(ctx context.Context) ([]core.PurposeTotal, error) {
	return s.repo.GetTotalsByPurpose(ctx)
}

func (s *Service) Summaries(ctx context.Context, g core.Granularity) ([]core.PeriodSummary, error) {
	return s.repo.GetPeriodSummaries(ctx, g)
}

// Wipe deletes every transaction and restarts id numbering.
func (s *Service) Wipe(ctx context.Context) error {
	err := s.repo.DeleteAllTransactions(ctx)
	s.invalidate()
	if err != nil {
		return fmt.Errorf("wipe ledger: %w", err)
	}
	return nil
}

// Convert rescales every amount by rate, e.g. 0.0000625 to go from IDR to USD.
func (s *Service) Convert(ctx context.Context, rate float64) error {
	err := s.repo.ConvertAllAmounts(ctx, rate)
	s.invalidate()
	if err != nil {
		return fmt.Errorf("convert amounts: %w", err)
	}
	return nil
}

// Import validates every record first and writes nothing if one is invalid.
// With atomic set, a storage failure also leaves the ledger untouched;
// otherwise rows written before the failure remain and are counted.
func (s *Service) Import(ctx context.Context, records []core.Transaction, atomic bool) (int, error) {
	for i, rec := range records {
		if err := rec.Validate(); err != nil {
			return 0, fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	if len(records) == 0 {
		return 0, nil
	}

	var (
		n   int
		err error
	)
	if atomic {
		n, err = s.repo.ImportTransactionsAtomic(ctx, records)
	} else {
		n, err = s.repo.ImportTransactions(ctx, records)
	}
	s.invalidate()
	if err != nil {
		return n, fmt.Errorf("import transactions: %w", err)
	}

	s.logger.InfoContext(ctx, "Import completed", "count", n, "atomic", atomic)
	return n, nil
}
