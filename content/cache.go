// Per-session content cache.
//
// Information Hiding:
// - Fixed-size arena keyed by the closed Type enum, not a dynamic map
// - Entries are only ever invalidated wholesale on topic change

package content

// Cache holds the last generated text per content type for the current
// topic. Bounded by the closed Type enum, so at most one entry per type.
type Cache struct {
	entries [numTypes]string
	present [numTypes]bool
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Get returns the cached text for a type, if present.
func (c *Cache) Get(t Type) (string, bool) {
	if t < 0 || t >= numTypes || !c.present[t] {
		return "", false
	}
	return c.entries[t], true
}

// Put stores text for a type, replacing any prior entry.
func (c *Cache) Put(t Type, text string) {
	if t < 0 || t >= numTypes {
		return
	}
	c.entries[t] = text
	c.present[t] = true
}

// Clear removes every entry. Called on topic change and only then.
func (c *Cache) Clear() {
	*c = Cache{}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	n := 0
	for _, ok := range c.present {
		if ok {
			n++
		}
	}
	return n
}
