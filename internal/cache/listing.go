// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// listing.go provides a Valkey-backed cache for article listing responses.
// GET /api/articles is the heaviest query in the system (join + aggregate
// over every article); the serialized JSON body for each validated
// (sort_by, order, topic) combination is kept in Valkey so repeat requests
// skip the database entirely. Votes and comment counts both surface in
// listings, so every write to either invalidates the whole listing set.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// listingKeyPrefix is the Valkey key prefix for cached listings.
	listingKeyPrefix = "articles:"

	// DefaultListingTTL is how long a cached listing stays valid.
	DefaultListingTTL = time.Minute
)

// ListingCache manages article listing JSON caching in Valkey.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListingCache creates a new listing cache backed by the given Valkey client.
func NewListingCache(client *redis.Client, ttl time.Duration) *ListingCache {
	if ttl == 0 {
		ttl = DefaultListingTTL
	}
	return &ListingCache{client: client, ttl: ttl}
}

// Key returns the cache key for a listing query. Unfiltered listings get a
// distinct marker so they can never collide with a topic value.
func Key(sortBy, order string, topic *string) string {
	t := "all"
	if topic != nil {
		t = "t=" + *topic
	}
	return sortBy + ":" + order + ":" + t
}

// Get retrieves a cached listing body. Returns false on miss or error.
func (lc *ListingCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := lc.client.Get(ctx, listingKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("listing cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("listing cache hit", "key", key)
	return val, true
}

// Set stores a serialized listing body with the configured TTL.
func (lc *ListingCache) Set(ctx context.Context, key string, body []byte) {
	if err := lc.client.Set(ctx, listingKeyPrefix+key, body, lc.ttl).Err(); err != nil {
		slog.Warn("listing cache set error", "key", key, "error", err)
	}
}

// InvalidateAll removes every cached listing by scanning for the prefix.
// Called after any vote adjustment or comment write, since any listing
// could carry the stale value.
func (lc *ListingCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := lc.client.Scan(ctx, cursor, listingKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("listing cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := lc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("listing cache delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Debug("listing cache invalidated", "deleted", deleted)
	}
}
