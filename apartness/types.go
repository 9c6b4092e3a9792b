package apartness

// pairKey canonicalizes an unordered pair of node identities so the
// witness cache treats (a, b) and (b, a) identically.
type pairKey struct {
	lo, hi int
}

func makeKey(a, b int) pairKey {
	if a <= b {
		return pairKey{lo: a, hi: b}
	}
	return pairKey{lo: b, hi: a}
}

// Cache memoizes apartness witnesses keyed on the unordered pair of
// node identities. Only positive results (a witness was found) are
// cached: a negative result can flip to positive as the tree grows
// with further observations, but once apart, two nodes stay apart —
// the tree only ever gains edges, never loses them.
//
// Cache is not safe for concurrent use, matching the single-writer
// discipline of the observation tree it is paired with.
type Cache struct {
	m map[pairKey][]string
}

// NewCache creates an empty witness cache.
func NewCache() *Cache {
	return &Cache{m: make(map[pairKey][]string)}
}

// get returns a cached witness for (a, b), if any.
func (c *Cache) get(a, b int) ([]string, bool) {
	w, ok := c.m[makeKey(a, b)]
	return w, ok
}

// put records a found witness for (a, b). Symmetric by construction:
// cache[(a,b)] and cache[(b,a)] are the same map entry.
func (c *Cache) put(a, b int, witness []string) {
	c.m[makeKey(a, b)] = witness
}
