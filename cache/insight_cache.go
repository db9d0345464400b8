package insight_cache

import (
	"strings"
	"sync"
	"time"

	"github.com/noord-hq/noord-backend/models"
)

const TTL = 2 * time.Minute

// ── Computed insight cache ───────────────────────────────────────────────────
// Insights are cheap to recompute but the dashboard polls them on every
// render; a short TTL keyed by user+range absorbs the bursts. Invalidated
// on every sync.

type entry struct {
	insights  []models.Insight
	fetchedAt time.Time
}

var (
	mu    sync.RWMutex
	cache = make(map[string]*entry)
)

func key(userID string, rng *models.SyncRange) string {
	if rng == nil {
		return userID
	}
	return userID + ":" + rng.Start.Format("2006-01-02") + ":" + rng.End.Format("2006-01-02")
}

func Get(userID string, rng *models.SyncRange) ([]models.Insight, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := cache[key(userID, rng)]
	if ok && time.Since(e.fetchedAt) < TTL {
		return e.insights, true
	}
	return nil, false
}

func Set(userID string, rng *models.SyncRange, insights []models.Insight) {
	mu.Lock()
	defer mu.Unlock()
	cache[key(userID, rng)] = &entry{insights: insights, fetchedAt: time.Now()}
}

// ── Invalidate one user's entries (call after every sync) ────────────────────

func Invalidate(userID string) {
	mu.Lock()
	defer mu.Unlock()
	for k := range cache {
		// exact match covers the nil-range key; the ":" stops "user-1"
		// from also dropping "user-12"
		if k == userID || strings.HasPrefix(k, userID+":") {
			delete(cache, k)
		}
	}
}
