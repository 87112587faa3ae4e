// Package focal locates the most visually interesting region of an image
// and derives rule-of-thirds crop coordinates from it.
//
// The algorithm slices the image into strips along one axis, scores each
// strip by color contrast against the whole-image average and by visual
// complexity (entropy), and picks the most salient strip. The position of
// the winning strip relative to its neighbours yields a directional bias.
// Running the pass along both axes produces a 2D focal point, which the
// crop calculator aligns to a rule-of-thirds line inside a target rectangle.
//
// # Pipeline
//
//  1. Smooth the working image once (noise reduction, fixed amount).
//  2. Compute the whole-image average color and convert it to Lab once.
//  3. Slice vertically (width-wise strips) for the focal X and its bias.
//  4. Slice horizontally (height-wise strips) for the focal Y and its bias.
//  5. Compare source and target aspect ratios, then place the crop origin
//     so the focal point sits on the 1/3, 1/2, or 2/3 line of the axis
//     being cropped.
//
// The two axis passes are independent and run concurrently; both observe
// the pre-smoothed image and the shared average color.
//
// # Sampler
//
// The package never touches pixels directly. All raster access goes through
// the narrow Sampler interface (size, smoothing, region average color,
// region entropy), implemented by the raster package. This keeps the
// scoring math a pure, deterministic function of sampled region statistics.
//
// # Error Handling
//
// Contract violations (non-positive slice count, weight outside [0,1],
// invalid destination dimensions) fail fast with explicit errors. Sampler
// failures propagate unchanged: a malformed region request indicates a bug
// in the slicing math, not a transient condition, so there is no retry.
package focal
