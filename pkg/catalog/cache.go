package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// MemoryCache is an in-process TTL cache for catalog entries.
type MemoryCache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value   *NodeType
	expires time.Time
}

// NewMemoryCache creates an in-memory cache with the given TTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
	}
}

// Get returns the cached entry for a class id, if present and fresh.
func (c *MemoryCache) Get(_ context.Context, classID string) (*NodeType, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[classID]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expires) {
		return nil, false, nil
	}
	return entry.value, true, nil
}

// Put stores an entry until its TTL expires.
func (c *MemoryCache) Put(_ context.Context, entry *NodeType) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[entry.ClassID] = memoryEntry{
		value:   entry,
		expires: time.Now().Add(c.ttl),
	}
	return nil
}

// Search returns cached entries whose class id or description contains the
// token. Expired entries are skipped.
func (c *MemoryCache) Search(_ context.Context, token string) ([]NodeType, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := time.Now()
	var matches []NodeType
	for _, entry := range c.entries {
		if now.After(entry.expires) {
			continue
		}
		if entryMatches(entry.value, token) {
			matches = append(matches, *entry.value)
		}
	}
	return matches, nil
}

// RedisCache stores catalog entries in redis, sharing the cache between
// processes. Expiry is delegated to redis key TTLs.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a redis-backed cache with the given TTL.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached entry for a class id, if present.
func (c *RedisCache) Get(ctx context.Context, classID string) (*NodeType, bool, error) {
	data, err := c.client.Get(ctx, cacheKey(classID)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	var entry NodeType
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		return nil, false, fmt.Errorf("failed to decode cache entry: %w", err)
	}
	return &entry, true, nil
}

// Put stores an entry until its TTL expires.
func (c *RedisCache) Put(ctx context.Context, entry *NodeType) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(entry.ClassID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// Search scans the cached keys and returns entries matching the token.
// Expired keys have already been evicted by redis.
func (c *RedisCache) Search(ctx context.Context, token string) ([]NodeType, error) {
	keys, err := c.client.Keys(ctx, cacheKey("*")).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list cache entries: %w", err)
	}

	var matches []NodeType
	for _, key := range keys {
		entry, ok, err := c.Get(ctx, strings.TrimPrefix(key, cacheKey("")))
		if err != nil {
			return nil, err
		}
		if ok && entryMatches(entry, token) {
			matches = append(matches, *entry)
		}
	}
	return matches, nil
}

func entryMatches(entry *NodeType, token string) bool {
	return strings.Contains(entry.ClassID, token) || strings.Contains(entry.Description, token)
}

func cacheKey(classID string) string {
	return "catalog:type:" + classID
}
