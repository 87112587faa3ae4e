// Package raster supplies the pixel-level primitives the focal-point
// algorithm consumes: image loading, smoothing, region average color,
// region entropy, and crop execution.
//
// The core analysis code never touches pixels; it depends on the narrow
// sampler capability that Image implements. Everything that requires a
// concrete raster representation lives here.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left.
// Regions are given as (x, y, w, h) covering [x, x+w) × [y, y+h).
//
// # Working Images
//
// Image wraps a decoded picture as a private working copy. Smoothing
// mutates the working copy in place, never the caller's original, so one
// decoded image can back any number of analyses by wrapping a fresh Image
// per run. An Image is not safe for concurrent mutation; read-only
// sampling is safe once smoothing has completed.
//
// # Caching
//
// The ImageCache type keeps decoded originals keyed by path and is safe
// for concurrent use. Cached images stay pristine; analyses wrap clones.
package raster
