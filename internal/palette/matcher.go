package palette

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"

	"github.com/coloromo/coloromo/internal/colorspace"
)

// ErrEmptyPalette is returned when a nearest-color query is issued against a
// palette with zero members.
var ErrEmptyPalette = errors.New("palette: no colors to match against")

// Stats reports the matcher's cache behavior.
//
// A hit means the answer came straight from the cache with no distance
// computations; a miss means a full search over the palette was performed.
type Stats struct {
	Hits   uint64 `json:"hits"`   // Queries answered from the cache
	Misses uint64 `json:"misses"` // Queries requiring a palette search
}

// Matcher resolves an RGB color to its perceptually nearest palette member.
//
// Real images reuse the same pixel values many times over, so the matcher
// memoizes every resolved color. The cache maps an input RGB color to the
// palette member a fresh search over the current member set would return;
// to preserve that invariant, palette mutation must go through Add, which
// discards the cache whenever the member set changes.
//
// Matcher is safe for concurrent use. Concurrent Nearest calls for the same
// uncached color may both run the search; they compute the same deterministic
// result, so the race costs only duplicated work, never a wrong answer. A
// search always sees a consistent member set (it runs under the read lock),
// and a result computed before an Add won the write lock is never inserted
// into the fresh cache: each Add that grows the palette bumps a generation
// counter, and the miss path only caches results whose generation still
// matches.
type Matcher struct {
	mu      sync.RWMutex
	palette *Palette
	cache   map[colorspace.RGB]colorspace.RGB
	gen     uint64 // bumped by Add whenever the member set changes

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewMatcher creates a matcher bound to the given palette. A nil palette is
// replaced with a new empty one. The matcher takes ownership: callers must
// not mutate the palette directly afterwards.
func NewMatcher(p *Palette) *Matcher {
	if p == nil {
		p = New()
	}
	return &Matcher{
		palette: p,
		cache:   make(map[colorspace.RGB]colorspace.RGB),
	}
}

// Add inserts colors into the underlying palette. If the member set changed,
// the memoization cache is discarded in full: an entry resolved against the
// smaller palette could silently misreport the nearest member otherwise.
// Adding only duplicates leaves the cache intact.
func (m *Matcher) Add(colors ...colorspace.RGB) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.palette.Add(colors...) > 0 {
		m.cache = make(map[colorspace.RGB]colorspace.RGB)
		m.gen++
	}
}

// Len returns the number of palette members.
func (m *Matcher) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.palette.Len()
}

// Colors returns a snapshot of the palette members in unspecified order.
func (m *Matcher) Colors() []colorspace.RGB {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.palette.Colors()
}

// Stats returns a snapshot of the cache hit/miss counters.
func (m *Matcher) Stats() Stats {
	return Stats{Hits: m.hits.Load(), Misses: m.misses.Load()}
}

// Nearest returns the palette member with the minimum CIEDE2000 distance to
// the given color.
//
// Cached colors are answered in O(1) with no distance computations. A miss
// converts the input to CIELAB once and scans every member. Exact distance
// ties are broken by the smaller packed RGB value, so the winner is
// deterministic for a given palette state regardless of iteration order.
//
// Returns ErrEmptyPalette if the palette has no members.
func (m *Matcher) Nearest(c colorspace.RGB) (colorspace.RGB, error) {
	m.mu.RLock()
	if match, ok := m.cache[c]; ok {
		m.mu.RUnlock()
		m.hits.Add(1)
		return match, nil
	}
	if m.palette.Len() == 0 {
		m.mu.RUnlock()
		return colorspace.RGB{}, ErrEmptyPalette
	}
	gen := m.gen
	match := m.search(c)
	m.mu.RUnlock()
	m.misses.Add(1)

	m.mu.Lock()
	// If an Add grew the palette after the search started, this result is
	// stale relative to the current member set; returning it is fine (the
	// query ordered before the Add), but caching it would poison the cleared
	// cache.
	if m.gen == gen {
		m.cache[c] = match
	}
	m.mu.Unlock()
	return match, nil
}

// search performs the linear nearest-member scan. Callers must hold at least
// the read lock and have checked that the palette is non-empty.
func (m *Matcher) search(c colorspace.RGB) colorspace.RGB {
	lab := c.Lab()
	var best colorspace.RGB
	bestDist := math.Inf(1)
	for member, memberLab := range m.palette.members {
		d := colorspace.DeltaE(lab, memberLab)
		if d < bestDist || (d == bestDist && packRGB(member) < packRGB(best)) {
			best = member
			bestDist = d
		}
	}
	return best
}

// packRGB packs a color into a single integer for ordering tie-breaks.
func packRGB(c colorspace.RGB) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
