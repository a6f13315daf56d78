package storage

import (
	"context"
	"log/slog"
	"sync"

	"github.com/centsible/centsible/internal/model"
)

// table identifies which of the two persisted tables a watcher observes.
type table int

const (
	tableTransactions table = iota
	tableCategories
)

// watchHub tracks live watchers and wakes them after committed mutations.
// Wake-ups coalesce: a watcher that is still re-querying when several
// mutations land sees a single fresh snapshot covering all of them.
type watchHub struct {
	subs   map[int64]*subscriber
	mu     sync.Mutex
	nextID int64
	closed bool
}

type subscriber struct {
	wake  chan struct{}
	done  chan struct{}
	table table
}

func newWatchHub() *watchHub {
	return &watchHub{subs: make(map[int64]*subscriber)}
}

// subscribe registers a watcher for a table. The returned cancel func is
// idempotent and detaches observation only; it never interrupts a write.
func (h *watchHub) subscribe(t table) (*subscriber, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := &subscriber{
		table: t,
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
	}

	if h.closed {
		close(sub.done)
		return sub, func() {}
	}

	id := h.nextID
	h.nextID++
	h.subs[id] = sub

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(sub.done)
		})
	}
	return sub, cancel
}

// notify wakes every live watcher of the given table.
func (h *watchHub) notify(t table) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs {
		if sub.table != t {
			continue
		}
		select {
		case sub.wake <- struct{}{}:
		default:
			// a wake-up is already pending; the pending requery will
			// pick up this mutation too
		}
	}
}

func (h *watchHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, sub := range h.subs {
		close(sub.done)
		delete(h.subs, id)
	}
}

// WatchTransactions returns a live view over all transactions. The first
// snapshot arrives without any mutation occurring; every committed insert,
// update, or delete afterwards delivers a fresh one. Delivery is
// latest-wins: a slow reader observes the newest state, never a backlog.
// The cancel func (or ctx) detaches observation and closes the channel.
func (s *Store) WatchTransactions(ctx context.Context) (<-chan []model.Transaction, func(), error) {
	if err := validateContext(ctx); err != nil {
		return nil, nil, err
	}

	sub, cancel := s.watchers.subscribe(tableTransactions)
	out := make(chan []model.Transaction, 1)

	go func() {
		defer close(out)
		for {
			snap, err := s.ListTransactions(ctx)
			if err != nil {
				if ctx.Err() == nil {
					slog.Error("transaction watch query failed", "error", err)
				}
				return
			}
			if !deliver(out, snap, sub.done, ctx.Done()) {
				return
			}
			select {
			case <-sub.wake:
			case <-sub.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cancel, nil
}

// WatchCategories returns a live view over one presentation bucket of
// categories for a transaction type. Semantics match WatchTransactions.
func (s *Store) WatchCategories(ctx context.Context, txnType model.TransactionType, bucket model.Bucket) (<-chan []model.Category, func(), error) {
	if err := validateContext(ctx); err != nil {
		return nil, nil, err
	}
	if err := validateType(txnType); err != nil {
		return nil, nil, err
	}

	sub, cancel := s.watchers.subscribe(tableCategories)
	out := make(chan []model.Category, 1)

	go func() {
		defer close(out)
		for {
			snap, err := s.ListCategoriesByBucket(ctx, txnType, bucket)
			if err != nil {
				if ctx.Err() == nil {
					slog.Error("category watch query failed", "error", err)
				}
				return
			}
			if !deliver(out, snap, sub.done, ctx.Done()) {
				return
			}
			select {
			case <-sub.wake:
			case <-sub.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cancel, nil
}

// WatchAllCategories returns a live view over every category of both
// transaction types, expenses first. Semantics match WatchTransactions.
func (s *Store) WatchAllCategories(ctx context.Context) (<-chan []model.Category, func(), error) {
	if err := validateContext(ctx); err != nil {
		return nil, nil, err
	}

	sub, cancel := s.watchers.subscribe(tableCategories)
	out := make(chan []model.Category, 1)

	go func() {
		defer close(out)
		for {
			var snap []model.Category
			for _, txnType := range []model.TransactionType{model.TypeExpense, model.TypeIncome} {
				cats, err := s.ListCategories(ctx, txnType)
				if err != nil {
					if ctx.Err() == nil {
						slog.Error("category watch query failed", "error", err)
					}
					return
				}
				snap = append(snap, cats...)
			}
			if !deliver(out, snap, sub.done, ctx.Done()) {
				return
			}
			select {
			case <-sub.wake:
			case <-sub.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cancel, nil
}

// deliver places a snapshot in the watcher's channel, replacing any
// undelivered previous snapshot so the reader always gets the newest one.
func deliver[T any](out chan []T, snap []T, done <-chan struct{}, ctxDone <-chan struct{}) bool {
	for {
		select {
		case out <- snap:
			return true
		case <-done:
			return false
		case <-ctxDone:
			return false
		default:
		}
		// drop the stale pending snapshot, then retry
		select {
		case <-out:
		default:
		}
	}
}
