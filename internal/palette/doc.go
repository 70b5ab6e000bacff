// Package palette provides the palette model and the nearest-color matcher
// for image palette reduction.
//
// A Palette is an unordered, duplicate-free set of 8-bit RGB colors. Each
// member's CIELAB representation is computed once at insertion and stored
// with it, so the matcher's scans never re-convert palette members.
//
// A Matcher binds to a Palette and resolves arbitrary RGB colors to their
// perceptually nearest member using the CIEDE2000 distance. Because the pixel
// stream of a real image is highly repetitive, the matcher memoizes every
// resolution; subsequent queries for the same color are cache hits with no
// distance computations at all. The memoization cache is invalidated in full
// whenever the palette's member set grows, since an entry resolved against a
// smaller palette may no longer be the true nearest member.
//
// # Mutation Discipline
//
// The Matcher owns its Palette: all additions after construction must go
// through Matcher.Add so cache invalidation is a local side effect of the
// single mutation path rather than a cross-object notification protocol.
//
// # Concurrency
//
// Matcher is safe for concurrent queries; Add takes exclusive access relative
// to in-flight queries. A standalone Palette is not synchronized.
package palette
