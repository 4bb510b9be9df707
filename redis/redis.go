package redis

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

const blacklistPrefix = "token_blacklist:"

// InitRedis connects the token blacklist. With no REDIS_ADDR configured the
// app runs without one and logout becomes stateless.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("Warning: REDIS_ADDR not set, logout token blacklist disabled")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// BlacklistToken rejects a token for the rest of its lifetime.
func BlacklistToken(token string, ttl time.Duration) error {
	if Client == nil || ttl <= 0 {
		return nil
	}
	return Client.Set(Ctx, blacklistPrefix+token, "1", ttl).Err()
}

// IsBlacklisted reports whether a token was invalidated by logout.
func IsBlacklisted(token string) bool {
	if Client == nil {
		return false
	}
	n, err := Client.Exists(Ctx, blacklistPrefix+token).Result()
	if err != nil {
		log.Printf("Failed to check token blacklist: %v", err)
		return false
	}
	return n > 0
}
