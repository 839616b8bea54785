package ledger

import (
	"context"
	"sort"
	"sync"
	"time"
)

// lockTable hands out one lock per account id so that balance mutations on
// the same account never interleave. Locks are plain buffered channels, which
// keeps acquisition selectable against a deadline.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[string]chan struct{})}
}

func (lt *lockTable) lock(id string) chan struct{} {
	lt.mu.Lock()
	defer lt.mu.Unlock()

	l, ok := lt.locks[id]
	if !ok {
		l = make(chan struct{}, 1)
		lt.locks[id] = l
	}
	return l
}

// acquire takes the locks for the given account ids, always in lexicographic
// order so that opposite-direction transfers between the same pair of
// accounts cannot deadlock. The whole acquisition must complete within
// maxWait; past the deadline the partial acquisition is undone and the
// caller gets ErrConflict.
func (lt *lockTable) acquire(ctx context.Context, maxWait time.Duration, ids ...string) (func(), error) {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)

	timer := time.NewTimer(maxWait)
	defer timer.Stop()

	held := make([]chan struct{}, 0, len(sorted))
	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			<-held[i]
		}
	}

	for _, id := range sorted {
		l := lt.lock(id)
		select {
		case l <- struct{}{}:
			held = append(held, l)
		case <-timer.C:
			release()
			return nil, ErrConflict
		case <-ctx.Done():
			release()
			return nil, ctx.Err()
		}
	}

	return release, nil
}
