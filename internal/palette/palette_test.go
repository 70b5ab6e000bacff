package palette

import (
	"testing"

	"github.com/coloromo/coloromo/internal/colorspace"
)

func TestNew_CollapsesDuplicates(t *testing.T) {
	p := New(
		colorspace.RGB{R: 255, G: 0, B: 0},
		colorspace.RGB{R: 0, G: 255, B: 0},
		colorspace.RGB{R: 255, G: 0, B: 0},
	)
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestAdd_ReportsNewMembers(t *testing.T) {
	p := New()
	if got := p.Add(colorspace.RGB{R: 1, G: 2, B: 3}, colorspace.RGB{R: 4, G: 5, B: 6}); got != 2 {
		t.Errorf("first Add returned %d, want 2", got)
	}
	if got := p.Add(colorspace.RGB{R: 1, G: 2, B: 3}); got != 0 {
		t.Errorf("duplicate Add returned %d, want 0", got)
	}
	if got := p.Add(colorspace.RGB{R: 1, G: 2, B: 3}, colorspace.RGB{R: 7, G: 8, B: 9}); got != 1 {
		t.Errorf("mixed Add returned %d, want 1", got)
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}
}

func TestHas(t *testing.T) {
	p := New(colorspace.RGB{R: 10, G: 20, B: 30})
	if !p.Has(colorspace.RGB{R: 10, G: 20, B: 30}) {
		t.Error("Has should report an inserted member")
	}
	if p.Has(colorspace.RGB{R: 10, G: 20, B: 31}) {
		t.Error("Has should not report an absent color")
	}
}

func TestColors_Snapshot(t *testing.T) {
	p := New(colorspace.RGB{R: 1, G: 1, B: 1}, colorspace.RGB{R: 2, G: 2, B: 2})

	colors := p.Colors()
	if len(colors) != 2 {
		t.Fatalf("Colors() returned %d members, want 2", len(colors))
	}

	// Mutating the snapshot must not affect the palette.
	colors[0] = colorspace.RGB{R: 99, G: 99, B: 99}
	if p.Has(colorspace.RGB{R: 99, G: 99, B: 99}) {
		t.Error("mutating the Colors() snapshot leaked into the palette")
	}
}

func TestPalette_MemberLabsComputedAtInsertion(t *testing.T) {
	c := colorspace.RGB{R: 200, G: 100, B: 50}
	p := New(c)

	got, ok := p.members[c]
	if !ok {
		t.Fatal("member missing from palette map")
	}
	if want := c.Lab(); got != want {
		t.Errorf("stored Lab %v differs from fresh conversion %v", got, want)
	}
}
