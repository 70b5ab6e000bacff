package palette

import (
	"github.com/coloromo/coloromo/internal/colorspace"
)

// Palette is an unordered, duplicate-free collection of RGB colors.
//
// Each member's CIELAB representation is computed eagerly at insertion time
// and stored alongside it, so nearest-color searches never pay for conversion
// and there is no lazily-filled state to go stale.
//
// Palette itself is not synchronized. When a Palette is bound to a Matcher,
// all mutation must go through the Matcher so its memoization cache stays
// consistent with the member set.
type Palette struct {
	members map[colorspace.RGB]colorspace.Lab
}

// New creates a palette containing the given colors. Duplicates in the input
// are collapsed to a single member.
func New(colors ...colorspace.RGB) *Palette {
	p := &Palette{members: make(map[colorspace.RGB]colorspace.Lab, len(colors))}
	p.Add(colors...)
	return p
}

// Add inserts colors into the palette. Colors already present are silently
// ignored. Returns the number of members actually added, so callers holding
// derived state (such as a Matcher's cache) can tell whether the member set
// changed.
func (p *Palette) Add(colors ...colorspace.RGB) int {
	added := 0
	for _, c := range colors {
		if _, ok := p.members[c]; ok {
			continue
		}
		p.members[c] = c.Lab()
		added++
	}
	return added
}

// Has reports whether the color is a member of the palette.
func (p *Palette) Has(c colorspace.RGB) bool {
	_, ok := p.members[c]
	return ok
}

// Len returns the number of members.
func (p *Palette) Len() int {
	return len(p.members)
}

// Colors returns a snapshot of the members in unspecified order.
func (p *Palette) Colors() []colorspace.RGB {
	out := make([]colorspace.RGB, 0, len(p.members))
	for c := range p.members {
		out = append(out, c)
	}
	return out
}
