package searcher

import (
	"sync"

	"othello/game"
)

type cacheKey struct {
	hash      game.StateHash
	maximize  bool
	remaining int
}

// cache holds exact values of positions already searched. Values backed up under
// alpha-beta are only bounds, so the cache is used by plain minimax alone.
type cache struct {
	sync.RWMutex
	values map[cacheKey]int
}

func newCache() *cache {
	return &cache{values: make(map[cacheKey]int)}
}

func (c *cache) get(key cacheKey) (int, bool) {
	c.RLock()
	defer c.RUnlock()

	v, ok := c.values[key]
	return v, ok
}

func (c *cache) put(key cacheKey, value int) {
	c.Lock()
	defer c.Unlock()

	c.values[key] = value
}
