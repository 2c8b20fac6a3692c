package flow

// Cache holds the last Result computed for one container, keyed by the
// width it was computed for.
//
// A Cache is owned by a single container and used by one layout pass at a
// time; it has no internal locking. The zero value is an empty cache.
type Cache struct {
	result   Result
	valid    bool
	width    float64
	hasWidth bool
	dirty    bool
}

// MarkDirty forces the next EnsureValid to recompute. Call it whenever the
// elements, their intents or the configuration change; the cache cannot
// see those changes itself.
func (c *Cache) MarkDirty() {
	c.dirty = true
}

// IsDirty reports whether MarkDirty was called since the last recompute.
func (c *Cache) IsDirty() bool {
	return c.dirty
}

// peek returns the cached result without validating it.
func (c *Cache) peek() (Result, bool) {
	return c.result, c.valid
}

// Reset empties the cache.
func (c *Cache) Reset() {
	*c = Cache{}
}

// EnsureValid returns the cached result if it was computed for width and
// the cache is not dirty. Otherwise it discards the stored result, calls
// recompute, and stores the new result for width.
func (c *Cache) EnsureValid(width float64, recompute func() Result) Result {
	if !c.dirty && c.valid && c.hasWidth && c.width == width {
		return c.result
	}

	c.result, c.valid = Result{}, false
	c.result = recompute()
	c.valid = true
	c.width, c.hasWidth = width, true
	c.dirty = false
	return c.result
}
