// Package memory provides an in-process snapshot store for tests and
// ephemeral sessions.
package memory

import (
	"context"
	"sync"

	"carehome/pkg/domain"
)

var _ domain.SnapshotStore = (*Store)(nil)

// Store keeps the most recent snapshot in memory.
type Store struct {
	mu    sync.RWMutex
	snap  domain.Snapshot
	saved bool
}

// NewStore returns an empty store.
func NewStore() *Store { return &Store{} }

// SaveSnapshot replaces the held snapshot with a deep copy of snap.
func (s *Store) SaveSnapshot(ctx context.Context, snap domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap.Clone()
	s.saved = true
	return nil
}

// LoadSnapshot returns a deep copy of the held snapshot.
func (s *Store) LoadSnapshot(ctx context.Context) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.saved {
		return domain.Snapshot{}, domain.ErrNoSnapshot
	}
	return s.snap.Clone(), nil
}
