package storage

import (
	"sync"
	"sync/atomic"

	"deeptrace/metrics"

	"go.uber.org/zap"
)

// Store holds the current dataset snapshot. Load and Reload build a fresh
// Dataset off to the side and swap it in with a single atomic pointer store,
// so readers either see the previous complete snapshot or the new one,
// never a half-updated state.
type Store struct {
	provider Provider
	logger   *zap.SugaredLogger

	current  atomic.Pointer[Dataset]
	reloadMu sync.Mutex
}

// NewStore creates a store over the given provider. Call Load before
// serving queries.
func NewStore(provider Provider, logger *zap.SugaredLogger) *Store {
	return &Store{provider: provider, logger: logger}
}

// Load builds the initial dataset. Per-collection source failures degrade
// to empty collections inside buildDataset; Load itself never fails.
func (s *Store) Load() {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()
	s.swap(buildDataset(s.provider, s.logger))
}

// Reload rebuilds all five collections from the provider and atomically
// replaces the current snapshot.
func (s *Store) Reload() {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()
	s.swap(buildDataset(s.provider, s.logger))
}

func (s *Store) swap(ds *Dataset) {
	s.current.Store(ds)
	for name, count := range ds.Counts() {
		metrics.RecordsLoaded.WithLabelValues(name).Set(float64(count))
		s.logger.Infow("Loaded collection", "collection", name, "records", count)
	}
}

// Snapshot returns the current dataset. Operations that read more than one
// collection should take a single snapshot up front so a concurrent reload
// cannot mix records from two generations. Returns nil before the first
// Load.
func (s *Store) Snapshot() *Dataset {
	return s.current.Load()
}
