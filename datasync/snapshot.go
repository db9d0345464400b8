package datasync

import (
	"encoding/json"
	"log"

	"github.com/noord-hq/noord-backend/config"
	"github.com/noord-hq/noord-backend/models"
)

// Snapshots are a soft warm-start hint, not authoritative: one JSON blob
// per user id, no TTL, overwritten after each completed catalog sync.

func snapshotKey(userID string) string {
	return "noord:snapshot:" + userID
}

func saveSnapshot(userID string, snap models.DashboardSnapshot) {
	if config.RedisClient == nil {
		return
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		log.Printf("[sync.snapshot] ERROR marshal user=%s err=%v", userID, err)
		return
	}
	if err := config.RedisClient.Set(config.Ctx, snapshotKey(userID), payload, 0).Err(); err != nil {
		log.Printf("[sync.snapshot] ERROR save user=%s err=%v", userID, err)
	}
}

func loadSnapshot(userID string) *models.DashboardSnapshot {
	if config.RedisClient == nil {
		return nil
	}
	payload, err := config.RedisClient.Get(config.Ctx, snapshotKey(userID)).Bytes()
	if err != nil {
		return nil
	}
	var snap models.DashboardSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		log.Printf("[sync.snapshot] ERROR decode user=%s err=%v", userID, err)
		return nil
	}
	return &snap
}

// DropSnapshot removes the warm-start blob (credentials changed).
func DropSnapshot(userID string) {
	if config.RedisClient == nil {
		return
	}
	config.RedisClient.Del(config.Ctx, snapshotKey(userID))
}
