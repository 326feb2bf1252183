package icon

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheSize covers every possible key (101 percentages x 2 charging states),
// so the cache never evicts.
const cacheSize = 101 * 2

// Key identifies a cached icon.
type Key struct {
	Percentage int
	Charging   bool
}

// IconFunc renders the icon for a reading.
type IconFunc func(percentage int, charging bool) ([]byte, error)

// Cache memoises rendered icons. Rendering is a pure function of the key, so
// entries never go stale.
type Cache struct {
	render IconFunc
	icons  *lru.Cache[Key, []byte]
}

// NewCache wraps render with a cache.
func NewCache(render IconFunc) *Cache {
	icons, err := lru.New[Key, []byte](cacheSize)
	if err != nil {
		// Only returned for a non-positive size.
		panic(err)
	}

	return &Cache{
		render: render,
		icons:  icons,
	}
}

// GetOrRender returns the icon stored under key, rendering and storing it on
// a miss. Failed renders are not stored. Two concurrent misses on the same key
// both render; the later Add wins, and both results are identical.
func (c *Cache) GetOrRender(key Key) ([]byte, error) {
	if err := ValidatePercentage(key.Percentage); err != nil {
		return nil, err
	}

	if b, ok := c.icons.Get(key); ok {
		return b, nil
	}

	b, err := c.render(key.Percentage, key.Charging)
	if err != nil {
		return nil, err
	}
	c.icons.Add(key, b)

	return b, nil
}

// Icon is GetOrRender for a reading.
func (c *Cache) Icon(percentage int, charging bool) ([]byte, error) {
	return c.GetOrRender(Key{Percentage: percentage, Charging: charging})
}

// Len is the number of cached icons.
func (c *Cache) Len() int {
	return c.icons.Len()
}
