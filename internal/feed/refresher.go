package feed

import (
	"context"
	"sync"
	"time"

	apperrors "home-services-backend/internal/errors"
)

// Refresher serializes snapshot refreshes. Every call to Refresh supersedes
// any refresh still in flight: the older request's context is cancelled and
// its response, should it still arrive, is discarded. The published snapshot
// therefore always belongs to the most recently requested refresh, even when
// an older, slower response lands after a newer, faster one.
type Refresher struct {
	client *Client

	mu        sync.Mutex
	seq       uint64
	cancel    context.CancelFunc
	snapshot  *Snapshot
	updatedAt time.Time
}

// NewRefresher creates a refresher around a feed client
func NewRefresher(client *Client) *Refresher {
	return &Refresher{client: client}
}

// Refresh fetches a fresh snapshot. Returns ErrStaleResponse when a newer
// refresh was requested while this one was in flight.
func (r *Refresher) Refresh(ctx context.Context) (*Snapshot, error) {
	r.mu.Lock()
	r.seq++
	seq := r.seq
	if r.cancel != nil {
		r.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.mu.Unlock()

	snap, err := r.client.FetchSnapshot(fetchCtx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if seq != r.seq {
		// a newer refresh owns the slot now; this response is stale
		return nil, apperrors.ErrStaleResponse
	}
	cancel()
	r.cancel = nil

	if err != nil {
		return nil, err
	}
	r.snapshot = snap
	r.updatedAt = time.Now()
	return snap, nil
}

// Latest returns the last published snapshot, or nil when none has landed yet
func (r *Refresher) Latest() (*Snapshot, time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot, r.updatedAt
}
