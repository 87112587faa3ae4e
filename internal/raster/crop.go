package raster

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// CropResult contains an executed crop.
type CropResult struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Crop extracts the width × height rectangle with top-left corner (x, y)
// from an image and returns it as base64-encoded PNG. This is the
// downstream consumer of the crop coordinates the focal package computes.
//
// An optional scale factor resizes the result (Lanczos); 1.0 or 0 leaves
// it at crop size.
func Crop(img image.Image, x, y, width, height int, scale float64) (*CropResult, error) {
	bounds := img.Bounds()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid crop size %dx%d", width, height)
	}
	if x < 0 || y < 0 || x+width > bounds.Dx() || y+height > bounds.Dy() {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds %dx%d",
			x, y, x+width, y+height, bounds.Dx(), bounds.Dy())
	}

	cropped := imaging.Crop(img, image.Rect(bounds.Min.X+x, bounds.Min.Y+y,
		bounds.Min.X+x+width, bounds.Min.Y+y+height))

	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(cropped.Bounds().Dx()) * scale)
		newHeight := int(float64(cropped.Bounds().Dy()) * scale)
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, cropped); err != nil {
		return nil, fmt.Errorf("failed to encode cropped image: %w", err)
	}

	return &CropResult{
		X:           x,
		Y:           y,
		Width:       cropped.Bounds().Dx(),
		Height:      cropped.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
