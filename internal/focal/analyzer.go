package focal

import (
	"fmt"

	"github.com/ironsheep/focal-crop-mcp/internal/colorspace"
)

// findBestSlice runs one analysis pass along the given axis.
//
// The image is divided into sliceCount strips. Each strip is scored as
//
//	score = colorScore·weight + entropyScore·(1−weight)
//
// where colorScore is the Lab distance between the strip's average color
// and the whole-image average, and entropyScore is the strip's sampled
// entropy. A weight of exactly 0 skips color sampling entirely and a
// weight of exactly 1 skips entropy sampling; the extremes must short
// circuit so an unused primitive is never invoked.
//
// The winning strip is the first one achieving the maximum score (a linear
// scan, so ties resolve to the lowest index deterministically). The return
// values are the center of the winning strip as a fraction of the sliced
// dimension, and the directional bias of the score distribution around it.
//
// A pass with no signal at all, where every strip scores identically (a
// solid-color image, for instance), reports the axis center with no bias
// rather than electing the first strip: there is no salient region to
// favor, so the crop should stay centered.
//
// Callers validate sliceCount and weight; sampler errors propagate with
// the failing slice identified.
func findBestSlice(src Sampler, width, height, sliceCount int, weight float64, average colorspace.Lab, ax axis) (float64, Bias, error) {
	// Strip geometry. The primary dimension is the one being sliced; the
	// secondary is the full extent it is measured against.
	var sliceWidth, sliceHeight, primary, secondary int
	switch ax {
	case axisVertical:
		sliceWidth = width / sliceCount
		sliceHeight = height
		primary = sliceWidth
		secondary = width
	case axisHorizontal:
		sliceWidth = width
		sliceHeight = height / sliceCount
		primary = sliceHeight
		secondary = height
	}

	scores := make([]float64, sliceCount)
	for i := 0; i < sliceCount; i++ {
		var x, y int
		if ax == axisVertical {
			x = i * sliceWidth
		} else {
			y = i * sliceHeight
		}

		var colorScore float64
		if weight != 0 {
			avg, err := src.AverageColor(x, y, sliceWidth, sliceHeight)
			if err != nil {
				return 0, 0, fmt.Errorf("average color of slice %d: %w", i, err)
			}
			colorScore = colorspace.Distance(average, colorspace.RGBToLab(avg))
		}

		var entropyScore float64
		if weight != 1 {
			e, err := src.Entropy(x, y, sliceWidth, sliceHeight)
			if err != nil {
				return 0, 0, fmt.Errorf("entropy of slice %d: %w", i, err)
			}
			entropyScore = e
		}

		scores[i] = colorScore*weight + entropyScore*(1-weight)
	}

	uniform := true
	best := 0
	for i, s := range scores {
		if s != scores[0] {
			uniform = false
		}
		if s > scores[best] {
			best = i
		}
	}
	if uniform {
		return 0.5, 0, nil
	}

	center := (float64(best) + 0.5) * float64(primary) / float64(secondary)
	return center, evaluateBias(scores, best), nil
}
