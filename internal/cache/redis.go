package cache

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const analyticsKey = "analytics:repayments"

// AnalyticsTTL is how long a computed report may be served from Redis.
// The engine itself always recomputes from scratch; this layer sits in
// front of it and degrades to per-call recomputation when Redis is down.
const AnalyticsTTL = 60 * time.Second

var client *redis.Client

// Init initializes the Redis connection. Returns an error when Redis is
// unreachable; callers treat that as "run without cache".
func Init() error {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		host := os.Getenv("REDIS_HOST")
		if host == "" {
			host = "localhost"
		}
		port := os.Getenv("REDIS_PORT")
		if port == "" {
			port = "6379"
		}
		addr = host + ":" + port
	}

	client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// Close the failed client and set to nil for graceful degradation
		client.Close()
		client = nil
		return err
	}
	return nil
}

// Available reports whether the cache is usable.
func Available() bool {
	return client != nil
}

// GetAnalytics returns the cached analytics JSON, if present.
func GetAnalytics(ctx context.Context) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, analyticsKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetAnalytics stores the analytics JSON. Failures are ignored; the next
// request simply recomputes.
func SetAnalytics(ctx context.Context, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, analyticsKey, data, AnalyticsTTL)
}

// InvalidateAnalytics drops the cached report. Called after any repayment
// or SHG write so dashboards never see a stale report for the full TTL.
func InvalidateAnalytics(ctx context.Context) {
	if client == nil {
		return
	}
	client.Del(ctx, analyticsKey)
}
