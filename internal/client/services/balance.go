package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/taskbalance/internal/balance"
	"github.com/dmitrijs2005/taskbalance/internal/common"
	"github.com/dmitrijs2005/taskbalance/internal/logging"
)

// BalanceTracker holds today's balance record for the signed-in user.
type BalanceTracker struct {
	store    BalanceStore
	identity Identity
	notifier Notifier
	logger   logging.Logger
	now      func() time.Time

	mu      sync.Mutex
	current *balance.Record
}

func NewBalanceTracker(store BalanceStore, identity Identity, notifier Notifier, logger logging.Logger) *BalanceTracker {
	return &BalanceTracker{
		store:    store,
		identity: identity,
		notifier: notifier,
		logger:   logger.With("module", "balance"),
		now:      time.Now,
	}
}

// WithClock replaces the clock used to decide what "today" is.
func (b *BalanceTracker) WithClock(now func() time.Time) *BalanceTracker {
	b.now = now
	return b
}

// today is the current UTC calendar date.
func (b *BalanceTracker) today() string {
	return b.now().UTC().Format(common.DateLayout)
}

func (b *BalanceTracker) fail(ctx context.Context, op string, err error) error {
	b.logger.Error(ctx, "balance store call failed", "op", op, "error", err)
	b.notifier.Notify(LevelError, "Could not "+op)
	return &PersistenceError{Op: op, Err: err}
}

func (b *BalanceTracker) setCurrent(r balance.Record) {
	b.mu.Lock()
	b.current = &r
	b.mu.Unlock()
}

// Load fetches today's record. A missing row yields an all-zero record for
// today; other failures leave the current record untouched.
func (b *BalanceTracker) Load(ctx context.Context) error {
	owner, ok := b.identity.UserID()
	if !ok {
		b.mu.Lock()
		b.current = nil
		b.mu.Unlock()
		return nil
	}

	date := b.today()
	rec, err := b.store.GetBalance(ctx, owner, date)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		rec = balance.Empty(date)
	case err != nil:
		return b.fail(ctx, "load balance", err)
	}

	b.setCurrent(rec)
	return nil
}

func (b *BalanceTracker) Current() (balance.Record, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return balance.Record{}, false
	}
	return *b.current, true
}

// Save clamps r, upserts it and adopts the stored row. An empty date means today.
func (b *BalanceTracker) Save(ctx context.Context, r balance.Record) (balance.Record, error) {
	owner, ok := b.identity.UserID()
	if !ok {
		return balance.Record{}, nil
	}

	r.Hours = r.Hours.Clamped()
	if r.Date == "" {
		r.Date = b.today()
	}

	saved, err := b.store.UpsertBalance(ctx, owner, r)
	if err != nil {
		return balance.Record{}, b.fail(ctx, "save balance", err)
	}

	b.setCurrent(saved)
	b.notifier.Notify(LevelInfo, "Balance saved")
	return saved, nil
}

// SetHours saves the current record with one category changed.
func (b *BalanceTracker) SetHours(ctx context.Context, c balance.Category, hours float64) (balance.Record, error) {
	r, ok := b.Current()
	if !ok {
		r = balance.Empty(b.today())
	}
	r.Hours = r.Hours.With(c, hours)
	return b.Save(ctx, r)
}

// Score is the score of the current record, 0 without one.
func (b *BalanceTracker) Score() int {
	r, ok := b.Current()
	if !ok {
		return 0
	}
	return balance.Score(r.Hours)
}

func (b *BalanceTracker) Breakdown() []balance.Share {
	r, ok := b.Current()
	if !ok {
		return balance.Breakdown(balance.Hours{})
	}
	return balance.Breakdown(r.Hours)
}
