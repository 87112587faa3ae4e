package focal

import "fmt"

// CropCoordinates converts a focal point into the top-left corner of a
// destWidth × destHeight crop rectangle inside a sourceWidth × sourceHeight
// image.
//
// Only one axis is ever cropped. When the source is relatively wider than
// the target (sourceWidth/sourceHeight >= destWidth/destHeight) the full
// height is kept, y is 0, and x places the focal point on a rule-of-thirds
// line chosen by the sign of XBias: positive aligns it to the 2/3 line,
// negative to the 1/3 line, zero centers it. Otherwise the full width is
// kept and the symmetric logic applies to y using YBias.
//
// The returned origin always satisfies 0 <= x <= sourceWidth-destWidth and
// 0 <= y <= sourceHeight-destHeight. A crop that would overrun the far
// edge is pulled back to sourceWidth-destWidth-1 (resp. height); when the
// destination spans the full source dimension that pullback lands at -1
// and the final floor at zero leaves the crop flush with the near edge.
//
// Destination dimensions must be positive and must not exceed the source.
func CropCoordinates(fp *FocalPoint, sourceWidth, sourceHeight, destWidth, destHeight int) (x, y int, err error) {
	if destWidth <= 0 || destHeight <= 0 {
		return 0, 0, fmt.Errorf("destination dimensions must be positive, got %dx%d", destWidth, destHeight)
	}
	if destWidth > sourceWidth || destHeight > sourceHeight {
		return 0, 0, fmt.Errorf("destination %dx%d exceeds source %dx%d",
			destWidth, destHeight, sourceWidth, sourceHeight)
	}

	var fx, fy float64
	if float64(sourceWidth)/float64(sourceHeight) >= float64(destWidth)/float64(destHeight) {
		// Source relatively wider: crop along the horizontal axis,
		// keep the full height.
		focal := fp.X * float64(sourceWidth)
		switch {
		case fp.XBias > 0:
			fx = focal - 2*float64(destWidth)/3
		case fp.XBias < 0:
			fx = focal - float64(destWidth)/3
		default:
			fx = focal - float64(destWidth)/2
		}
		if fx >= float64(sourceWidth-destWidth) {
			fx = float64(sourceWidth - destWidth - 1)
		}
	} else {
		// Source relatively taller: crop along the vertical axis,
		// keep the full width.
		focal := fp.Y * float64(sourceHeight)
		switch {
		case fp.YBias > 0:
			fy = focal - 2*float64(destHeight)/3
		case fp.YBias < 0:
			fy = focal - float64(destHeight)/3
		default:
			fy = focal - float64(destHeight)/2
		}
		if fy >= float64(sourceHeight-destHeight) {
			fy = float64(sourceHeight - destHeight - 1)
		}
	}

	if fx < 0 {
		fx = 0
	}
	if fy < 0 {
		fy = 0
	}
	return int(fx), int(fy), nil
}
