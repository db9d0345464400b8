// ════════════════════════════════════════════════════════════
// Path: config/redis.go
// Redis connection (rate limiting + dashboard snapshots)
// ════════════════════════════════════════════════════════════

package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	// RedisClient serves two concerns: the per-IP rate limiter counters
	// and the per-user dashboard warm-start snapshots. Both degrade
	// gracefully when it is nil (tests run without Redis).
	RedisClient *redis.Client

	Ctx = context.Background()
)

// ConnectRedis dials the instance from REDIS_URL (Upstash in production,
// local Redis for development) and verifies it with a ping.
func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, using local Redis:", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		panic(fmt.Sprintf("❌ invalid REDIS_URL: %v", err))
	}

	RedisClient = redis.NewClient(opt)

	if _, err := RedisClient.Ping(Ctx).Result(); err != nil {
		panic(fmt.Sprintf("❌ failed to connect to Redis: %v", err))
	}
	log.Println("✅ Redis connected (rate limiting + snapshots)")
}
