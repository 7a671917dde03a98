package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"moodtunes/internal/model"
)

// RecommendationCache keeps normalized tracks per catalog query so identical
// queries inside the TTL skip the catalog round-trip.
type RecommendationCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewRecommendationCache(client *redisv9.Client, ttl time.Duration) *RecommendationCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RecommendationCache{client: client, ttl: ttl}
}

func (c *RecommendationCache) Get(ctx context.Context, query string) ([]model.Track, bool, error) {
	raw, err := c.client.Get(ctx, c.key(query)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get recommendations failed: %w", err)
	}

	var tracks []model.Track
	if err := json.Unmarshal([]byte(raw), &tracks); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached recommendations failed: %w", err)
	}
	return tracks, true, nil
}

func (c *RecommendationCache) Set(ctx context.Context, query string, tracks []model.Track) error {
	payload, err := json.Marshal(tracks)
	if err != nil {
		return fmt.Errorf("marshal recommendations cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.key(query), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set recommendations failed: %w", err)
	}
	return nil
}

// key hashes the free-text query so arbitrary user input never shapes a key.
func (c *RecommendationCache) key(query string) string {
	sum := sha256.Sum256([]byte(query))
	return fmt.Sprintf("recommend:tracks:%s", hex.EncodeToString(sum[:]))
}
