// Package snapcache keeps an in-memory snapshot of the user collection
// so leaderboard requests never wait on the store. The snapshot is
// swapped atomically by a background refresh loop.
package snapcache

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/jordanopensource/topcontrib/internal/contract"
	"github.com/jordanopensource/topcontrib/schema"
)

// UserCache implements contract.UserSnapshot over a Store.
type UserCache struct {
	store    contract.Store
	interval time.Duration
	snapshot atomic.Pointer[[]schema.User]
}

var _ contract.UserSnapshot = &UserCache{} // Compile-time check

// New builds a cache refreshing at the given interval. A non-positive
// interval falls back to the default.
func New(store contract.Store, interval time.Duration) *UserCache {
	if interval <= 0 {
		interval = contract.DefaultRefreshInterval
	}
	return &UserCache{store: store, interval: interval}
}

// Get returns the current snapshot, loading it from the store on first
// use. Callers must not mutate the returned slice.
func (c *UserCache) Get(ctx context.Context) ([]schema.User, error) {
	if snap := c.snapshot.Load(); snap != nil {
		return *snap, nil
	}
	if err := c.Refresh(ctx); err != nil {
		return nil, err
	}
	return *c.snapshot.Load(), nil
}

// Refresh replaces the snapshot with a fresh read of the collection.
// Readers holding the old snapshot are unaffected by the swap.
func (c *UserCache) Refresh(ctx context.Context) error {
	users, err := c.store.FetchAllUsers(ctx)
	if err != nil {
		return err
	}
	if users == nil {
		users = []schema.User{}
	}
	c.snapshot.Store(&users)
	return nil
}

// Run refreshes the snapshot on a ticker until the context is canceled.
// A failed refresh keeps the previous snapshot and is retried on the
// next tick.
func (c *UserCache) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.Refresh(ctx); err != nil {
				log.Printf("Warning: snapshot refresh failed, serving stale data: %v", err)
			}
		}
	}
}
