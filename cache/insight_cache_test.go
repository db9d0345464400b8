package insight_cache

import (
	"testing"
	"time"

	"github.com/noord-hq/noord-backend/models"
)

func testRange(days int) *models.SyncRange {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return &models.SyncRange{Start: start, End: start.AddDate(0, 0, days)}
}

func TestSetGetRoundTrip(t *testing.T) {
	rng := testRange(7)
	list := []models.Insight{{ID: "alert-low-stock", Type: models.InsightAlert}}

	Set("user-a", rng, list)

	got, ok := Get("user-a", rng)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(got) != 1 || got[0].ID != "alert-low-stock" {
		t.Errorf("unexpected cached value: %+v", got)
	}
}

func TestDifferentRangeMisses(t *testing.T) {
	Set("user-b", testRange(7), []models.Insight{{ID: "x"}})

	if _, ok := Get("user-b", testRange(30)); ok {
		t.Error("different range must not hit")
	}
	if _, ok := Get("user-b", nil); ok {
		t.Error("nil range must not hit a ranged entry")
	}
}

func TestInvalidateDropsAllUserEntries(t *testing.T) {
	Set("user-c", testRange(7), []models.Insight{{ID: "x"}})
	Set("user-c", testRange(30), []models.Insight{{ID: "y"}})
	Set("other", testRange(7), []models.Insight{{ID: "z"}})

	Invalidate("user-c")

	if _, ok := Get("user-c", testRange(7)); ok {
		t.Error("expected entry dropped")
	}
	if _, ok := Get("user-c", testRange(30)); ok {
		t.Error("expected entry dropped")
	}
	if _, ok := Get("other", testRange(7)); !ok {
		t.Error("other user's entry must survive")
	}
}

func TestInvalidateSparesUsersSharingAPrefix(t *testing.T) {
	Set("user-1", testRange(7), []models.Insight{{ID: "a"}})
	Set("user-12", testRange(7), []models.Insight{{ID: "b"}})
	Set("user-12", nil, []models.Insight{{ID: "c"}})

	Invalidate("user-1")

	if _, ok := Get("user-1", testRange(7)); ok {
		t.Error("expected user-1 entry dropped")
	}
	if _, ok := Get("user-12", testRange(7)); !ok {
		t.Error("user-12's ranged entry must survive user-1 invalidation")
	}
	if _, ok := Get("user-12", nil); !ok {
		t.Error("user-12's unranged entry must survive user-1 invalidation")
	}
}
