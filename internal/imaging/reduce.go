package imaging

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/coloromo/coloromo/internal/colorspace"
	"github.com/coloromo/coloromo/internal/palette"
)

// Reducer drives a palette matcher over every pixel of an image, producing an
// output of identical dimensions whose pixels are all palette members.
//
// With Parallel set, pixel rows are partitioned across worker goroutines. The
// matcher's memoization cache is shared between workers, so the first few
// rows warm it for the rest; a duplicated search during warm-up computes the
// same result twice and is harmless.
type Reducer struct {
	// Matcher resolves each pixel to its nearest palette member.
	Matcher *palette.Matcher

	// Parallel partitions rows across goroutines when true. Output is
	// identical either way.
	Parallel bool
}

// NewReducer creates a serial reducer using the given matcher.
func NewReducer(m *palette.Matcher) *Reducer {
	return &Reducer{Matcher: m}
}

// Reduce maps every pixel of a row-major RGB grid to its nearest palette
// member, returning a new grid of the same shape. The input grid is not
// modified.
//
// Returns palette.ErrEmptyPalette if the matcher's palette has no members.
func (r *Reducer) Reduce(grid [][]colorspace.RGB) ([][]colorspace.RGB, error) {
	if r.Matcher.Len() == 0 {
		return nil, palette.ErrEmptyPalette
	}

	out := make([][]colorspace.RGB, len(grid))
	err := r.eachRow(len(grid), func(y int) error {
		row := make([]colorspace.RGB, len(grid[y]))
		for x, px := range grid[y] {
			match, err := r.Matcher.Nearest(px)
			if err != nil {
				return err
			}
			row[x] = match
		}
		out[y] = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReduceImage maps every pixel of an image to its nearest palette member.
//
// The output is an NRGBA image with the same dimensions, anchored at (0,0).
// Matching considers only the RGB channels; each source pixel's alpha value
// is carried through to the output untouched. Translucent pixels are matched
// on their non-premultiplied color, not the darker premultiplied form.
//
// Returns palette.ErrEmptyPalette if the matcher's palette has no members.
func (r *Reducer) ReduceImage(img image.Image) (*image.NRGBA, error) {
	if r.Matcher.Len() == 0 {
		return nil, palette.ErrEmptyPalette
	}

	bounds := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	err := r.eachRow(bounds.Dy(), func(y int) error {
		for x := 0; x < bounds.Dx(); x++ {
			px := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			match, err := r.Matcher.Nearest(colorspace.RGB{R: px.R, G: px.G, B: px.B})
			if err != nil {
				return err
			}
			out.SetNRGBA(x, y, color.NRGBA{R: match.R, G: match.G, B: match.B, A: px.A})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReduceFile loads the image at inPath (through the cache), reduces it, and
// saves the result to outPath with the format inferred from its extension.
func (r *Reducer) ReduceFile(cache *ImageCache, inPath, outPath string) error {
	img, err := cache.Load(inPath)
	if err != nil {
		return err
	}
	reduced, err := r.ReduceImage(img)
	if err != nil {
		return fmt.Errorf("failed to reduce %s: %w", inPath, err)
	}
	return Save(reduced, outPath)
}

// eachRow runs fn for every row index in [0, rows), serially or partitioned
// across goroutines per the Parallel flag. The first error wins; later rows
// may still run, which is safe because row work never depends on other rows.
func (r *Reducer) eachRow(rows int, fn func(y int) error) error {
	if !r.Parallel || rows < 2 {
		for y := 0; y < rows; y++ {
			if err := fn(y); err != nil {
				return err
			}
		}
		return nil
	}

	var (
		mu       sync.Mutex
		firstErr error
	)
	parallel.Line(rows, func(start, end int) {
		for y := start; y < end; y++ {
			if err := fn(y); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
		}
	})
	return firstErr
}
