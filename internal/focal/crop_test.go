package focal

import "testing"

func TestCropCoordinates_WideSourceCropsHorizontally(t *testing.T) {
	// Source ratio 2.0 >= dest ratio 1.33: full height kept, y forced to 0.
	fp := &FocalPoint{X: 0.5, Y: 0.9}

	x, y, err := CropCoordinates(fp, 1000, 500, 400, 300)
	if err != nil {
		t.Fatalf("CropCoordinates failed: %v", err)
	}
	if y != 0 {
		t.Errorf("y: got %d, want 0", y)
	}
	// Centered: 0.5*1000 - 0.5*400.
	if x != 300 {
		t.Errorf("x: got %d, want 300", x)
	}
}

func TestCropCoordinates_TallSourceCropsVertically(t *testing.T) {
	// Source ratio 0.5 < dest ratio 0.75: full width kept, x forced to 0.
	fp := &FocalPoint{X: 0.9, Y: 0.5}

	x, y, err := CropCoordinates(fp, 500, 1000, 300, 400)
	if err != nil {
		t.Fatalf("CropCoordinates failed: %v", err)
	}
	if x != 0 {
		t.Errorf("x: got %d, want 0", x)
	}
	if y != 300 {
		t.Errorf("y: got %d, want 300", y)
	}
}

func TestCropCoordinates_ThirdsPlacement(t *testing.T) {
	tests := []struct {
		name  string
		xBias Bias
		wantX int
	}{
		// focal sits at 500; dest width 400.
		{"positive bias aligns to 2/3 line", 1, 233}, // 500 - 266.67
		{"negative bias aligns to 1/3 line", -1, 366}, // 500 - 133.33
		{"no bias centers", 0, 300},                   // 500 - 200
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp := &FocalPoint{X: 0.5, XBias: tt.xBias}
			x, y, err := CropCoordinates(fp, 1000, 500, 400, 300)
			if err != nil {
				t.Fatalf("CropCoordinates failed: %v", err)
			}
			if x != tt.wantX || y != 0 {
				t.Errorf("got (%d,%d), want (%d,0)", x, y, tt.wantX)
			}
		})
	}
}

func TestCropCoordinates_FarEdgeClamp(t *testing.T) {
	// Focal point on the right edge would push the crop past the source;
	// it is pulled back to sourceWidth-destWidth-1.
	fp := &FocalPoint{X: 1.0}

	x, _, err := CropCoordinates(fp, 1000, 500, 400, 300)
	if err != nil {
		t.Fatalf("CropCoordinates failed: %v", err)
	}
	if x != 599 {
		t.Errorf("x: got %d, want 599", x)
	}
}

func TestCropCoordinates_FullWidthDestFlushToEdge(t *testing.T) {
	// destWidth == sourceWidth: the far-edge pullback lands at -1 and the
	// zero floor leaves the crop flush with the left edge.
	fp := &FocalPoint{X: 0.9}

	x, y, err := CropCoordinates(fp, 300, 100, 300, 100)
	if err != nil {
		t.Fatalf("CropCoordinates failed: %v", err)
	}
	if x != 0 || y != 0 {
		t.Errorf("got (%d,%d), want (0,0)", x, y)
	}
}

func TestCropCoordinates_NegativeClampsToZero(t *testing.T) {
	fp := &FocalPoint{X: 0.0, XBias: -1}

	x, _, err := CropCoordinates(fp, 1000, 500, 400, 300)
	if err != nil {
		t.Fatalf("CropCoordinates failed: %v", err)
	}
	if x != 0 {
		t.Errorf("x: got %d, want 0", x)
	}
}

func TestCropCoordinates_ContractViolations(t *testing.T) {
	fp := &FocalPoint{X: 0.5, Y: 0.5}

	tests := []struct {
		name                  string
		destWidth, destHeight int
	}{
		{"zero width", 0, 100},
		{"zero height", 100, 0},
		{"negative width", -10, 100},
		{"wider than source", 1001, 100},
		{"taller than source", 100, 501},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := CropCoordinates(fp, 1000, 500, tt.destWidth, tt.destHeight); err == nil {
				t.Error("expected contract violation error, got nil")
			}
		})
	}
}

func TestCropCoordinates_AlwaysInBounds(t *testing.T) {
	srcW, srcH := 640, 480
	dests := [][2]int{{640, 480}, {320, 480}, {640, 240}, {100, 100}, {1, 1}, {500, 100}, {100, 400}}
	focals := []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1}
	biases := []Bias{-1, 0, 1}

	for _, d := range dests {
		for _, fx := range focals {
			for _, fy := range focals {
				for _, bx := range biases {
					for _, by := range biases {
						fp := &FocalPoint{X: fx, Y: fy, XBias: bx, YBias: by}
						x, y, err := CropCoordinates(fp, srcW, srcH, d[0], d[1])
						if err != nil {
							t.Fatalf("CropCoordinates(%+v, %v) failed: %v", fp, d, err)
						}
						if x < 0 || x > srcW-d[0] {
							t.Errorf("x=%d out of [0,%d] for fp=%+v dest=%v", x, srcW-d[0], fp, d)
						}
						if y < 0 || y > srcH-d[1] {
							t.Errorf("y=%d out of [0,%d] for fp=%+v dest=%v", y, srcH-d[1], fp, d)
						}
					}
				}
			}
		}
	}
}
