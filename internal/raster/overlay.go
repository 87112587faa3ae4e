package raster

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// OverlayResult contains an image with the crop/focal debug overlay.
type OverlayResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// ThirdsOverlay renders a debug view of a crop decision: the crop
// rectangle outline, its interior rule-of-thirds lines, and a cross marker
// at the focal point (given as fractions of the full image dimensions).
//
// lineColorHex is a "#rrggbb" color for the overlay; an unparseable value
// falls back to red. The source image is not modified.
func ThirdsOverlay(img image.Image, cropX, cropY, cropWidth, cropHeight int, focalX, focalY float64, lineColorHex string) (*OverlayResult, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if cropWidth <= 0 || cropHeight <= 0 {
		return nil, fmt.Errorf("invalid crop size %dx%d", cropWidth, cropHeight)
	}
	if cropX < 0 || cropY < 0 || cropX+cropWidth > width || cropY+cropHeight > height {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds %dx%d",
			cropX, cropY, cropX+cropWidth, cropY+cropHeight, width, height)
	}

	lineColor := color.RGBA{255, 0, 0, 255}
	if parsed, err := colorful.Hex(lineColorHex); err == nil {
		r, g, b := parsed.RGB255()
		lineColor = color.RGBA{r, g, b, 255}
	}

	result := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(result, result.Bounds(), img, bounds.Min, draw.Src)

	// Crop rectangle outline.
	drawHLine(result, cropX, cropX+cropWidth-1, cropY, lineColor)
	drawHLine(result, cropX, cropX+cropWidth-1, cropY+cropHeight-1, lineColor)
	drawVLine(result, cropX, cropY, cropY+cropHeight-1, lineColor)
	drawVLine(result, cropX+cropWidth-1, cropY, cropY+cropHeight-1, lineColor)

	// Rule-of-thirds lines inside the crop.
	for _, fx := range []int{cropX + cropWidth/3, cropX + 2*cropWidth/3} {
		drawVLine(result, fx, cropY, cropY+cropHeight-1, lineColor)
	}
	for _, fy := range []int{cropY + cropHeight/3, cropY + 2*cropHeight/3} {
		drawHLine(result, cropX, cropX+cropWidth-1, fy, lineColor)
	}

	// Focal point cross marker.
	const markerArm = 6
	px := clampInt(int(focalX*float64(width)), 0, width-1)
	py := clampInt(int(focalY*float64(height)), 0, height-1)
	drawHLine(result, clampInt(px-markerArm, 0, width-1), clampInt(px+markerArm, 0, width-1), py, lineColor)
	drawVLine(result, px, clampInt(py-markerArm, 0, height-1), clampInt(py+markerArm, 0, height-1), lineColor)

	var buf bytes.Buffer
	if err := png.Encode(&buf, result); err != nil {
		return nil, fmt.Errorf("failed to encode overlay image: %w", err)
	}

	return &OverlayResult{
		Width:       width,
		Height:      height,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

func drawHLine(img *image.RGBA, x1, x2, y int, c color.RGBA) {
	for x := x1; x <= x2; x++ {
		img.SetRGBA(x, y, c)
	}
}

func drawVLine(img *image.RGBA, x, y1, y2 int, c color.RGBA) {
	for y := y1; y <= y2; y++ {
		img.SetRGBA(x, y, c)
	}
}

func clampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
