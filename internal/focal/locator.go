package focal

import (
	"fmt"
	"sync"

	"github.com/ironsheep/focal-crop-mcp/internal/colorspace"
)

// Default analysis parameters, used by CropCoordinates and suitable for
// most photographs.
const (
	// DefaultSliceCount is the number of strips per axis pass.
	DefaultSliceCount = 20

	// DefaultWeight balances color contrast and entropy equally.
	DefaultWeight = 0.5
)

// smoothAmount is the fixed strength of the noise-reduction pass applied
// once before any sampling. Smoothing keeps fine texture (grain, JPEG
// artifacts) from dominating the entropy scores.
const smoothAmount = 7

// Locator computes focal points and crop coordinates for a single image.
//
// A Locator holds no state across calls beyond the sampler handle and its
// cached dimensions; each analysis is a deterministic function of the
// sampled region statistics. Note that an analysis smooths the sampler's
// working image in place, so a sampler should not be shared with code that
// expects unmodified pixels.
type Locator struct {
	src    Sampler
	width  int
	height int
}

// NewLocator wraps a sampler for analysis. It fails if the sampler reports
// non-positive dimensions.
func NewLocator(src Sampler) (*Locator, error) {
	w, h := src.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", w, h)
	}
	return &Locator{src: src, width: w, height: h}, nil
}

// Size returns the image dimensions the locator was constructed with.
func (l *Locator) Size() (width, height int) {
	return l.width, l.height
}

// FocalPoint locates the most visually significant point of the image.
//
// sliceCount is the number of strips per axis and must be positive; weight
// mixes color contrast (1.0) against entropy (0.0) and must be in [0,1].
// Both axis passes use the same parameters.
//
// The working image is smoothed in place before sampling begins. The
// vertical and horizontal passes then run concurrently over the smoothed
// image and a shared whole-image average color.
func (l *Locator) FocalPoint(sliceCount int, weight float64) (*FocalPoint, error) {
	if sliceCount <= 0 {
		return nil, fmt.Errorf("slice count must be positive, got %d", sliceCount)
	}
	if weight < 0 || weight > 1 {
		return nil, fmt.Errorf("weight must be within [0,1], got %g", weight)
	}

	if err := l.src.Smooth(smoothAmount); err != nil {
		return nil, fmt.Errorf("smoothing pass: %w", err)
	}

	avg, err := l.src.AverageColor(0, 0, l.width, l.height)
	if err != nil {
		return nil, fmt.Errorf("whole-image average color: %w", err)
	}
	average := colorspace.RGBToLab(avg)

	var (
		wg           sync.WaitGroup
		x, y         float64
		xBias, yBias Bias
		xErr, yErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		x, xBias, xErr = findBestSlice(l.src, l.width, l.height, sliceCount, weight, average, axisVertical)
	}()
	go func() {
		defer wg.Done()
		y, yBias, yErr = findBestSlice(l.src, l.width, l.height, sliceCount, weight, average, axisHorizontal)
	}()
	wg.Wait()

	if xErr != nil {
		return nil, fmt.Errorf("vertical pass: %w", xErr)
	}
	if yErr != nil {
		return nil, fmt.Errorf("horizontal pass: %w", yErr)
	}

	return &FocalPoint{X: x, Y: y, XBias: xBias, YBias: yBias}, nil
}

// CropCoordinates locates the focal point with the default parameters and
// converts it into the top-left corner of a destWidth × destHeight crop.
func (l *Locator) CropCoordinates(destWidth, destHeight int) (x, y int, err error) {
	fp, err := l.FocalPoint(DefaultSliceCount, DefaultWeight)
	if err != nil {
		return 0, 0, err
	}
	return CropCoordinates(fp, l.width, l.height, destWidth, destHeight)
}
