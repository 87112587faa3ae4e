package focal

import (
	"github.com/ironsheep/focal-crop-mcp/internal/colorspace"
)

// Sampler is the capability the focal-point algorithm needs from the host
// image environment. It is intentionally narrow: the algorithm performs no
// pixel access of its own and depends only on these region statistics.
//
// Implementations are expected to be blocking and side-effect-free except
// for Smooth, which mutates the working image in place. AverageColor and
// Entropy must be safe for concurrent calls once smoothing has completed.
type Sampler interface {
	// Size returns the current image dimensions in pixels. Both values
	// must be positive.
	Size() (width, height int)

	// Smooth applies a blur/noise-reduction filter to the working image
	// in place. The amount is a small positive integer.
	Smooth(amount int) error

	// AverageColor returns the mean color over the region [x,x+w) × [y,y+h).
	AverageColor(x, y, w, h int) (colorspace.RGB, error)

	// Entropy returns a non-negative measure of the visual complexity of
	// the region [x,x+w) × [y,y+h). Higher means more visually complex.
	Entropy(x, y, w, h int) (float64, error)
}

// Bias is a directional signal for one axis: it records which side of the
// winning slice carried more score mass and nothing else. The crop
// calculator uses only its sign, to pick the rule-of-thirds line the focal
// point is aligned to (positive selects the 2/3 line, negative the 1/3
// line, zero centers).
type Bias int

// FocalPoint is the location judged most visually significant, expressed
// as fractions of the image dimensions, with the per-axis directional bias.
//
// X comes from a vertical-slicing pass and Y from a horizontal-slicing
// pass; the two values are independent.
type FocalPoint struct {
	X     float64 `json:"x"`      // fraction of width, roughly [0,1]
	Y     float64 `json:"y"`      // fraction of height, roughly [0,1]
	XBias Bias    `json:"x_bias"` // -1, 0, or 1
	YBias Bias    `json:"y_bias"` // -1, 0, or 1
}

// axis selects the slicing direction for one analysis pass.
type axis int

const (
	// axisVertical slices the image into width-wise strips (columns),
	// producing the focal X.
	axisVertical axis = iota

	// axisHorizontal slices the image into height-wise strips (rows),
	// producing the focal Y.
	axisHorizontal
)
