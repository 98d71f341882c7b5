package player

import (
	"hash/fnv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SigilForge_Go/internal/domain"
)

// CacheSchemaVersion is bumped when the cached structure changes so old entries are dropped
const CacheSchemaVersion = "1.0"

// generationStripes bounds the invalidation bookkeeping regardless of how many players exist
const generationStripes = 256

type cachedPlayerEntry struct {
	Version  string
	Player   domain.Player
	CachedAt time.Time
}

// playerCache is a read-through LRU for player views. Entries expire on TTL
// and are invalidated whenever an upgrade commits for the player.
//
// A read that misses takes a generation before going to storage and may only
// fill the cache if no invalidation for that player landed in between,
// otherwise a slow read could park a pre-upgrade view for a whole TTL.
type playerCache struct {
	lru *expirable.LRU[string, *cachedPlayerEntry]

	mu          sync.Mutex
	generations [generationStripes]uint64
}

func newPlayerCache(size int, ttl time.Duration) *playerCache {
	return &playerCache{
		lru: expirable.NewLRU[string, *cachedPlayerEntry](size, nil, ttl),
	}
}

func stripe(playerID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(playerID))
	return int(h.Sum32() % generationStripes)
}

// Get returns a copy so callers cannot mutate the cached value
func (c *playerCache) Get(playerID string) (*domain.Player, bool) {
	entry, found := c.lru.Get(playerID)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(playerID)
		return nil, false
	}
	p := entry.Player
	return &p, true
}

// Generation is taken before a storage read and handed back to SetIfCurrent
func (c *playerCache) Generation(playerID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[stripe(playerID)]
}

// SetIfCurrent stores player unless it was invalidated since gen was taken.
// Reports whether the entry was stored.
func (c *playerCache) SetIfCurrent(player *domain.Player, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[stripe(player.PlayerID)] != gen {
		return false
	}
	c.add(player)
	return true
}

// Set stores a value the caller just wrote itself
func (c *playerCache) Set(player *domain.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.add(player)
}

func (c *playerCache) add(player *domain.Player) {
	c.lru.Add(player.PlayerID, &cachedPlayerEntry{
		Version:  CacheSchemaVersion,
		Player:   *player,
		CachedAt: time.Now(),
	})
}

func (c *playerCache) Invalidate(playerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[stripe(playerID)]++
	c.lru.Remove(playerID)
}

func (c *playerCache) Len() int {
	return c.lru.Len()
}
