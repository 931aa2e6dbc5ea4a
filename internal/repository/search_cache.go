package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/homeland-scout/pg-finder/internal/model"
)

// SearchCache memoizes filtered search results in Redis. The cache is
// optional: with a nil client every lookup is a miss and every write
// a no-op. Admin CRUD invalidates the whole namespace because any
// mutation can change any filter's result set.
type SearchCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSearchCache builds a cache around rdb (may be nil) with the
// given entry TTL.
func NewSearchCache(rdb *redis.Client, ttl time.Duration) *SearchCache {
	return &SearchCache{rdb: rdb, ttl: ttl}
}

// key canonicalizes a filter spec. StudentName is excluded: it does
// not affect matching, so searches differing only by name share an
// entry.
func (c *SearchCache) key(spec model.SearchFilters) string {
	return fmt.Sprintf("search:g=%s:min=%d:max=%d:loc=%s",
		spec.GenderPreference, spec.PriceRange.Min, spec.PriceRange.Max, spec.Location)
}

// Get returns the cached result for spec, or (nil, false) on a miss.
func (c *SearchCache) Get(ctx context.Context, spec model.SearchFilters) ([]model.Listing, bool) {
	if c.rdb == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, c.key(spec)).Bytes()
	if err != nil {
		return nil, false
	}
	var listings []model.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, false
	}
	return listings, true
}

// Set stores a result for spec. Failures are swallowed; the cache is
// best-effort.
func (c *SearchCache) Set(ctx context.Context, spec model.SearchFilters, listings []model.Listing) {
	if c.rdb == nil {
		return
	}
	data, err := json.Marshal(listings)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, c.key(spec), data, c.ttl).Err()
}

// Invalidate drops every cached search result.
func (c *SearchCache) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	iter := c.rdb.Scan(ctx, 0, "search:*", 0).Iterator()
	for iter.Next(ctx) {
		_ = c.rdb.Del(ctx, iter.Val()).Err()
	}
}
