package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const inflightTTL = 2 * time.Minute

// InflightGuard limits a user to one concurrent call per assist operation.
// Key format: assist:inflight:<operation>:<user_id>. The TTL bounds how long
// a crashed caller can hold the slot.
type InflightGuard struct {
	client *redis.Client
}

func NewInflightGuard(client *redis.Client) *InflightGuard {
	return &InflightGuard{client: client}
}

// TryAcquire claims the slot; false means an earlier call still holds it.
func (g *InflightGuard) TryAcquire(ctx context.Context, operation, userID string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(operation, userID), "1", inflightTTL).Result()
	if err != nil {
		return false, fmt.Errorf("inflight acquire: %w", err)
	}
	return ok, nil
}

// Release frees the slot early instead of waiting out the TTL.
func (g *InflightGuard) Release(ctx context.Context, operation, userID string) {
	g.client.Del(ctx, g.key(operation, userID))
}

func (g *InflightGuard) key(operation, userID string) string {
	return fmt.Sprintf("assist:inflight:%s:%s", operation, userID)
}
