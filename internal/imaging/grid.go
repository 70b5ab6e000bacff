package imaging

import (
	"fmt"
	"image"

	"github.com/coloromo/coloromo/internal/colorspace"
)

// GridFromImage converts an image into a row-major 2D grid of RGB triples.
//
// The grid has one row per pixel row and one entry per pixel, indexed
// grid[y][x] with (0,0) at the image's top-left corner regardless of the
// image's bounds offset. Alpha is discarded; callers that need it must read
// it from the source image separately.
func GridFromImage(img image.Image) [][]colorspace.RGB {
	bounds := img.Bounds()
	grid := make([][]colorspace.RGB, bounds.Dy())
	for y := range grid {
		row := make([]colorspace.RGB, bounds.Dx())
		for x := range row {
			row[x] = colorspace.FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
		grid[y] = row
	}
	return grid
}

// ImageFromGrid converts a row-major 2D grid of RGB triples into a fully
// opaque NRGBA image anchored at (0,0).
//
// Returns an error if the grid is empty or ragged (rows of unequal length).
func ImageFromGrid(grid [][]colorspace.RGB) (*image.NRGBA, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("grid has no pixels")
	}
	width := len(grid[0])
	for y, row := range grid {
		if len(row) != width {
			return nil, fmt.Errorf("grid is not rectangular: row %d has %d pixels, want %d", y, len(row), width)
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, len(grid)))
	for y, row := range grid {
		for x, c := range row {
			img.SetNRGBA(x, y, c.NRGBA(255))
		}
	}
	return img, nil
}
