package focal

import (
	"errors"
	"math"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/ironsheep/focal-crop-mcp/internal/colorspace"
)

// stubSampler is a programmable Sampler for exercising the scoring math
// without a real raster. Counters are atomic because the locator runs its
// two axis passes concurrently.
type stubSampler struct {
	width, height int

	averageFn func(x, y, w, h int) (colorspace.RGB, error)
	entropyFn func(x, y, w, h int) (float64, error)
	smoothErr error

	smoothCalls  atomic.Int64
	averageCalls atomic.Int64
	entropyCalls atomic.Int64
}

func (s *stubSampler) Size() (int, int) { return s.width, s.height }

func (s *stubSampler) Smooth(amount int) error {
	s.smoothCalls.Add(1)
	return s.smoothErr
}

func (s *stubSampler) AverageColor(x, y, w, h int) (colorspace.RGB, error) {
	s.averageCalls.Add(1)
	if s.averageFn != nil {
		return s.averageFn(x, y, w, h)
	}
	return colorspace.RGB{}, nil
}

func (s *stubSampler) Entropy(x, y, w, h int) (float64, error) {
	s.entropyCalls.Add(1)
	if s.entropyFn != nil {
		return s.entropyFn(x, y, w, h)
	}
	return 0, nil
}

// entropyByIndex builds an entropy function that maps each strip to a fixed
// value, keyed by the strip index along the given axis.
func entropyByIndex(ax axis, stripSize int, values []float64) func(x, y, w, h int) (float64, error) {
	return func(x, y, w, h int) (float64, error) {
		pos := x
		if ax == axisHorizontal {
			pos = y
		}
		return values[pos/stripSize], nil
	}
}

func TestFindBestSlice_Vertical(t *testing.T) {
	// 100px wide, 10 slices -> 10px strips. Entropy peaks at strip 2.
	values := []float64{0, 1, 5, 2, 0, 0, 0, 0, 0, 0}
	s := &stubSampler{
		width:     100,
		height:    50,
		entropyFn: entropyByIndex(axisVertical, 10, values),
	}

	center, bias, err := findBestSlice(s, 100, 50, 10, 0, colorspace.Lab{}, axisVertical)
	if err != nil {
		t.Fatalf("findBestSlice failed: %v", err)
	}

	// Strip 2 wins: center = (2+0.5)*10/100.
	if math.Abs(center-0.25) > 1e-9 {
		t.Errorf("center: got %v, want 0.25", center)
	}
	// mean(before) = (0+1)/2 = 0.5 > mean(after) = 2/7.
	if bias != 1 {
		t.Errorf("bias: got %d, want 1", bias)
	}
}

func TestFindBestSlice_Horizontal(t *testing.T) {
	// 80px tall, 8 slices -> 10px strips. Entropy peaks at strip 5.
	values := []float64{0, 0, 0, 0, 0, 4, 1, 2}
	s := &stubSampler{
		width:     100,
		height:    80,
		entropyFn: entropyByIndex(axisHorizontal, 10, values),
	}

	center, bias, err := findBestSlice(s, 100, 80, 8, 0, colorspace.Lab{}, axisHorizontal)
	if err != nil {
		t.Fatalf("findBestSlice failed: %v", err)
	}

	if math.Abs(center-0.6875) > 1e-9 {
		t.Errorf("center: got %v, want 0.6875", center)
	}
	// mean(before) = 0 < mean(after) = 1.5.
	if bias != -1 {
		t.Errorf("bias: got %d, want -1", bias)
	}
}

func TestFindBestSlice_SliceGeometry(t *testing.T) {
	// Every sampled region must span the full extent of the axis not
	// being sliced, and strips must tile from the origin.
	s := &stubSampler{width: 100, height: 60}
	s.entropyFn = func(x, y, w, h int) (float64, error) {
		if h != 60 || y != 0 {
			t.Errorf("vertical slice region (%d,%d,%d,%d) should span full height", x, y, w, h)
		}
		if w != 20 || x%20 != 0 {
			t.Errorf("vertical slice region (%d,%d,%d,%d) has wrong strip geometry", x, y, w, h)
		}
		return float64(x), nil
	}
	if _, _, err := findBestSlice(s, 100, 60, 5, 0, colorspace.Lab{}, axisVertical); err != nil {
		t.Fatalf("findBestSlice failed: %v", err)
	}

	s.entropyFn = func(x, y, w, h int) (float64, error) {
		if w != 100 || x != 0 {
			t.Errorf("horizontal slice region (%d,%d,%d,%d) should span full width", x, y, w, h)
		}
		if h != 12 || y%12 != 0 {
			t.Errorf("horizontal slice region (%d,%d,%d,%d) has wrong strip geometry", x, y, w, h)
		}
		return float64(y), nil
	}
	if _, _, err := findBestSlice(s, 100, 60, 5, 0, colorspace.Lab{}, axisHorizontal); err != nil {
		t.Fatalf("findBestSlice failed: %v", err)
	}
}

func TestFindBestSlice_WeightZeroSkipsColorSampling(t *testing.T) {
	s := &stubSampler{
		width:     100,
		height:    50,
		entropyFn: entropyByIndex(axisVertical, 10, []float64{0, 0, 0, 7, 0, 0, 0, 0, 0, 1}),
	}

	center, _, err := findBestSlice(s, 100, 50, 10, 0, colorspace.Lab{}, axisVertical)
	if err != nil {
		t.Fatalf("findBestSlice failed: %v", err)
	}

	if got := s.averageCalls.Load(); got != 0 {
		t.Errorf("weight 0 must skip color sampling, got %d AverageColor calls", got)
	}
	// Score must be the entropy alone: strip 3 wins.
	if math.Abs(center-0.35) > 1e-9 {
		t.Errorf("center: got %v, want 0.35", center)
	}
}

func TestFindBestSlice_WeightOneSkipsEntropySampling(t *testing.T) {
	// All strips black except strip 3, which is white and therefore far
	// from the black whole-image average.
	s := &stubSampler{width: 100, height: 50}
	s.averageFn = func(x, y, w, h int) (colorspace.RGB, error) {
		if x/10 == 3 {
			return colorspace.RGB{R: 255, G: 255, B: 255}, nil
		}
		return colorspace.RGB{}, nil
	}

	center, _, err := findBestSlice(s, 100, 50, 10, 1, colorspace.RGBToLab(colorspace.RGB{}), axisVertical)
	if err != nil {
		t.Fatalf("findBestSlice failed: %v", err)
	}

	if got := s.entropyCalls.Load(); got != 0 {
		t.Errorf("weight 1 must skip entropy sampling, got %d Entropy calls", got)
	}
	if math.Abs(center-0.35) > 1e-9 {
		t.Errorf("center: got %v, want 0.35", center)
	}
}

func TestFindBestSlice_TieBreaksToLowestIndex(t *testing.T) {
	s := &stubSampler{
		width:     100,
		height:    100,
		entropyFn: entropyByIndex(axisVertical, 25, []float64{1, 5, 5, 2}),
	}

	center, _, err := findBestSlice(s, 100, 100, 4, 0, colorspace.Lab{}, axisVertical)
	if err != nil {
		t.Fatalf("findBestSlice failed: %v", err)
	}

	// Strips 1 and 2 tie at 5; the lower index must win.
	if math.Abs(center-0.375) > 1e-9 {
		t.Errorf("center: got %v, want 0.375 (strip 1)", center)
	}
}

func TestFindBestSlice_UniformScoresCenterUnbiased(t *testing.T) {
	for _, val := range []float64{0, 3.7} {
		s := &stubSampler{
			width:  100,
			height: 100,
			entropyFn: func(x, y, w, h int) (float64, error) {
				return val, nil
			},
		}

		center, bias, err := findBestSlice(s, 100, 100, 10, 0, colorspace.Lab{}, axisVertical)
		if err != nil {
			t.Fatalf("findBestSlice failed: %v", err)
		}
		if center != 0.5 || bias != 0 {
			t.Errorf("uniform scores (%v): got center=%v bias=%d, want 0.5 and 0", val, center, bias)
		}
	}
}

func TestFindBestSlice_SamplerErrorPropagates(t *testing.T) {
	sampleErr := errors.New("region out of bounds")
	s := &stubSampler{width: 100, height: 50}
	s.entropyFn = func(x, y, w, h int) (float64, error) {
		if x/10 == 2 {
			return 0, sampleErr
		}
		return 1, nil
	}

	_, _, err := findBestSlice(s, 100, 50, 10, 0, colorspace.Lab{}, axisVertical)
	if !errors.Is(err, sampleErr) {
		t.Fatalf("expected wrapped sampler error, got %v", err)
	}
	if !strings.Contains(err.Error(), "slice 2") {
		t.Errorf("error should identify the failing slice: %v", err)
	}
}
