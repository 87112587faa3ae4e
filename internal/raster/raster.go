package raster

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/focal-crop-mcp/internal/colorspace"
)

// Image is a working raster for one analysis run. It implements the
// sampler capability the focal package consumes.
type Image struct {
	img    *image.NRGBA
	width  int
	height int
}

// New wraps a decoded image as a working raster. The image is cloned, so
// smoothing during analysis never touches the caller's copy.
func New(src image.Image) *Image {
	clone := imaging.Clone(src)
	bounds := clone.Bounds()
	return &Image{
		img:    clone,
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}
}

// Size returns the image dimensions in pixels.
func (r *Image) Size() (width, height int) {
	return r.width, r.height
}

// Smooth applies a Gaussian blur of the given strength to the working
// image in place. Dimensions are unchanged.
func (r *Image) Smooth(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("smooth amount must be positive, got %d", amount)
	}
	r.img = imaging.Clone(blur.Gaussian(r.img, float64(amount)))
	return nil
}

// AverageColor returns the mean color over the region [x,x+w) × [y,y+h).
// Components are fractional; rounding them would discard exactly the small
// contrasts the slice scoring looks for.
func (r *Image) AverageColor(x, y, w, h int) (colorspace.RGB, error) {
	if err := r.checkRegion(x, y, w, h); err != nil {
		return colorspace.RGB{}, err
	}

	var sumR, sumG, sumB float64
	for yy := y; yy < y+h; yy++ {
		row := yy*r.img.Stride + x*4
		for xx := 0; xx < w; xx++ {
			i := row + xx*4
			sumR += float64(r.img.Pix[i])
			sumG += float64(r.img.Pix[i+1])
			sumB += float64(r.img.Pix[i+2])
		}
	}

	n := float64(w * h)
	return colorspace.RGB{R: sumR / n, G: sumG / n, B: sumB / n}, nil
}

// Entropy returns the Shannon entropy, in bits, of the 256-bin luminance
// histogram of the region [x,x+w) × [y,y+h). A flat region scores 0; the
// theoretical maximum is 8. Luminance uses the ITU-R BT.601 weights.
func (r *Image) Entropy(x, y, w, h int) (float64, error) {
	if err := r.checkRegion(x, y, w, h); err != nil {
		return 0, err
	}

	var histogram [256]float64
	for yy := y; yy < y+h; yy++ {
		row := yy*r.img.Stride + x*4
		for xx := 0; xx < w; xx++ {
			i := row + xx*4
			lum := 0.299*float64(r.img.Pix[i]) +
				0.587*float64(r.img.Pix[i+1]) +
				0.114*float64(r.img.Pix[i+2])
			histogram[int(lum+0.5)]++
		}
	}

	n := float64(w * h)
	var entropy float64
	for _, count := range histogram {
		if count == 0 {
			continue
		}
		p := count / n
		entropy -= p * math.Log2(p)
	}
	return entropy, nil
}

// checkRegion validates that a region is non-empty and inside the image.
func (r *Image) checkRegion(x, y, w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("empty region %dx%d at (%d,%d)", w, h, x, y)
	}
	if x < 0 || y < 0 || x+w > r.width || y+h > r.height {
		return fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds %dx%d",
			x, y, x+w, y+h, r.width, r.height)
	}
	return nil
}
