package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	domain "github.com/BruksfildServices01/studio-rental/internal/domain/studio"
	"github.com/BruksfildServices01/studio-rental/internal/models"
)

// StudioCache é um read-through em Redis sobre um studio.Reader.
// Falhas do Redis caem para a fonte, nunca para o cliente.
type StudioCache struct {
	next domain.Reader
	rdb  *redis.Client
	ttl  time.Duration
}

func NewStudioCache(next domain.Reader, rdb *redis.Client, ttl time.Duration) *StudioCache {
	return &StudioCache{next: next, rdb: rdb, ttl: ttl}
}

var _ domain.Cache = (*StudioCache)(nil)

func StudioCacheKey(id uint) string {
	return fmt.Sprintf("studio:%d", id)
}

func (c *StudioCache) GetStudio(ctx context.Context, id uint) (*models.Studio, error) {
	if c.rdb == nil {
		return c.next.GetStudio(ctx, id)
	}

	key := StudioCacheKey(id)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var s models.Studio
		if jsonErr := json.Unmarshal(raw, &s); jsonErr == nil {
			return &s, nil
		}
		log.Printf("studio cache: corrupt entry key=%s", key)
	case !errors.Is(err, redis.Nil):
		log.Printf("studio cache: get failed key=%s err=%v", key, err)
	}

	s, err := c.next.GetStudio(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(s)
	if err == nil {
		if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			log.Printf("studio cache: set failed key=%s err=%v", key, err)
		}
	}

	return s, nil
}

func (c *StudioCache) Invalidate(ctx context.Context, id uint) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, StudioCacheKey(id)).Err(); err != nil {
		log.Printf("studio cache: invalidate failed id=%d err=%v", id, err)
	}
}
