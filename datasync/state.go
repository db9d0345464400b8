package datasync

import (
	"sync"
	"time"

	"github.com/noord-hq/noord-backend/models"
)

// Store keeps one dashboard state per user. All field replacement goes
// through the per-user mutex, so the analytics and catalog flows can run
// concurrently and still commit their disjoint fields without lost updates.
type Store struct {
	mu     sync.Mutex
	states map[string]*userState
}

type userState struct {
	// mu guards data, lastRange and syncedAt.
	mu sync.Mutex

	// syncMu serializes whole sync invocations for this user. A second
	// syncData call blocks here and then usually short-circuits on the
	// cache-skip check instead of duplicating network calls.
	syncMu sync.Mutex

	data      models.DashboardData
	lastRange *models.SyncRange
	syncedAt  time.Time
}

// NewStore creates an empty state registry.
func NewStore() *Store {
	return &Store{states: make(map[string]*userState)}
}

// defaultStore backs the package-level API the controllers use.
var defaultStore = NewStore()

// Default returns the process-wide store.
func Default() *Store {
	return defaultStore
}

func (s *Store) state(userID string) *userState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[userID]
	if !ok {
		st = &userState{}
		// soft warm start from the Redis snapshot; ignore failures
		if snap := loadSnapshot(userID); snap != nil {
			st.data = snap.Data
			st.lastRange = snap.Range
			st.syncedAt = snap.Timestamp
		}
		s.states[userID] = st
	}
	return st
}

// Dashboard returns a copy of the user's current aggregate plus the last
// synced range. Slices are shared read-only snapshots; syncs replace whole
// slices and never mutate them in place.
func (s *Store) Dashboard(userID string) (models.DashboardData, *models.SyncRange, time.Time) {
	st := s.state(userID)
	st.mu.Lock()
	defer st.mu.Unlock()

	var rng *models.SyncRange
	if st.lastRange != nil {
		r := *st.lastRange
		rng = &r
	}
	return st.data, rng, st.syncedAt
}

// Reset drops a user's in-memory state (used when credentials change).
func (s *Store) Reset(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, userID)
}
