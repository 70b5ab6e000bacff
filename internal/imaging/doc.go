// Package imaging connects the palette-matching core to real images: loading
// and saving image files, converting between image.Image and row-major pixel
// grids, and driving the matcher over every pixel of an input.
//
// # Pixel Grids
//
// The reduction core operates on [][]colorspace.RGB grids indexed grid[y][x],
// row-major with (0,0) at the top-left. GridFromImage and ImageFromGrid
// translate between that shape and the standard library's image types;
// ReduceImage works on image.Image directly and is the path the CLI uses.
//
// # Alpha
//
// Palette matching sees only RGB. ReduceImage carries each source pixel's
// alpha through to the output unchanged; the grid API has no alpha at all.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. A Reducer may be shared across
// goroutines; with the Parallel flag set it partitions rows internally and
// relies on the matcher's own synchronization for the shared memoization
// cache.
//
// # Error Handling
//
// The only core-level failure is reducing against an empty palette, reported
// as palette.ErrEmptyPalette. Everything else — unreadable files, undecodable
// data, unsupported output extensions, ragged grids — is an I/O-layer error
// wrapped with context.
package imaging
