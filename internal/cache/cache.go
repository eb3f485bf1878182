// Package cache implements the in-memory generation cache: it tracks
// which raw candidate strings have already been resolved in this process
// and lets a batch run skip re-parsing and re-sorting work it has
// already done once.
package cache

import (
	"github.com/zeebo/xxh3"
)

// State is the three-state lifecycle of a GeneratorCache across
// successive Processor.Run calls against the same design.System.
type State int

const (
	// OneShot never transitions: every batch is generated and sorted in
	// full, nothing is remembered between runs. Used for a single `build`
	// invocation that won't run again in this process.
	OneShot State = iota
	// FirstRun is a cache's state before it has completed its first
	// batch; after that batch it transitions to Cached.
	FirstRun
	// Cached has already materialized every style it has seen; a
	// subsequent batch only needs to generate and sort the candidates it
	// has not seen before, then merge them into the already-sorted output.
	Cached
)

// Key fingerprints a raw candidate string plus the design system
// generation it was resolved against, so a cache built for one config
// can't be reused after the config changes shape.
type Key [16]byte

// NewKey hashes raw with xxh3 into a fixed-size cache key.
func NewKey(raw string, generation uint64) Key {
	h := xxh3.New()
	h.WriteString(raw)
	var gen [8]byte
	for i := range gen {
		gen[i] = byte(generation >> (8 * i))
	}
	h.Write(gen[:])
	sum := h.Sum128()
	var k Key
	hi, lo := sum.Hi, sum.Lo
	for i := 0; i < 8; i++ {
		k[i] = byte(hi >> (8 * i))
		k[8+i] = byte(lo >> (8 * i))
	}
	return k
}

// entry is one memoized generation result.
type entry struct {
	css   string
	extra string
	valid bool
}

// GeneratorCache is the per-process memo table keyed by raw candidate
// string. It is not safe for concurrent writes from multiple goroutines
// without external synchronization around Remember/Seen.
type GeneratorCache struct {
	mode    State
	seen    map[string]entry
	order   []string
	extras  []string
	genHash uint64
}

// New builds a cache in FirstRun state for the given design-system
// generation fingerprint (typically a hash of the resolved config).
func New(genHash uint64) *GeneratorCache {
	return &GeneratorCache{mode: FirstRun, seen: make(map[string]entry), genHash: genHash}
}

// NewOneShot builds a cache that never memoizes, for single-pass builds.
func NewOneShot() *GeneratorCache {
	return &GeneratorCache{mode: OneShot, seen: make(map[string]entry)}
}

func (c *GeneratorCache) State() State { return c.mode }

// Seen reports whether raw has already been resolved (and if so,
// whether it resolved to a real utility) in a non-OneShot cache.
func (c *GeneratorCache) Seen(raw string) (valid bool, ok bool) {
	if c.mode == OneShot {
		return false, false
	}
	e, ok := c.seen[raw]
	if !ok {
		return false, false
	}
	return e.valid, true
}

// Remember records raw's resolution. Unrecognized candidates (valid ==
// false) are remembered too, so a later batch containing the same
// garbage class name doesn't re-attempt generation.
func (c *GeneratorCache) Remember(raw, cssText, extraText string, valid bool) {
	if c.mode == OneShot {
		return
	}
	if _, exists := c.seen[raw]; !exists {
		c.order = append(c.order, raw)
	}
	c.seen[raw] = entry{css: cssText, extra: extraText, valid: valid}
	if extraText != "" {
		c.extras = append(c.extras, extraText)
	}
}

// Advance transitions FirstRun -> Cached after a batch completes; a
// no-op in OneShot or once already Cached.
func (c *GeneratorCache) Advance() {
	if c.mode == FirstRun {
		c.mode = Cached
	}
}

// Rendered returns every remembered valid style's CSS text in first-seen
// order (not in the generator's sort order).
func (c *GeneratorCache) Rendered() []string {
	out := make([]string, 0, len(c.order))
	for _, raw := range c.order {
		if e := c.seen[raw]; e.valid {
			out = append(out, e.css)
		}
	}
	return out
}

// Extras returns every remembered extra-CSS block across the cache's
// lifetime, in first-seen order.
func (c *GeneratorCache) Extras() []string {
	return append([]string(nil), c.extras...)
}
