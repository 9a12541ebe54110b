package jpegtopdf

// Orientation pairs an EXIF orientation code with the raw pixel dimensions
// of the image it describes. The codes record how the camera was held, not
// how the pixels are stored, so instead of transcoding pixels we derive a
// page-level placement transform and reuse the compressed stream as-is.
//
// Any code outside 1-8 (including the out-of-range values some devices
// write) behaves as code 1, the identity.
type Orientation struct {
	Code   uint16
	Width  int
	Height int
}

// DefaultOrientation is the identity orientation code, used whenever an
// image carries no usable EXIF orientation.
const DefaultOrientation uint16 = 1

func (o Orientation) transposed() bool {
	return o.Code >= 5 && o.Code <= 8
}

// DisplayWidth is the width of the image as it should be shown.
func (o Orientation) DisplayWidth() int {
	if o.transposed() {
		return o.Height
	}
	return o.Width
}

// DisplayHeight is the height of the image as it should be shown.
func (o Orientation) DisplayHeight() int {
	if o.transposed() {
		return o.Width
	}
	return o.Height
}

// TranslateX is the horizontal placement offset, in pixels.
func (o Orientation) TranslateX() int {
	switch o.Code {
	case 2, 3:
		return o.Width
	case 5, 8:
		return o.Height
	default:
		return 0
	}
}

// TranslateY is the vertical placement offset, in pixels.
func (o Orientation) TranslateY() int {
	switch o.Code {
	case 3, 4:
		return o.Height
	case 5, 6:
		return o.Width
	default:
		return 0
	}
}

// RotateDegrees is the counterclockwise rotation applied at placement.
func (o Orientation) RotateDegrees() float64 {
	switch o.Code {
	case 3, 4:
		return 180
	case 5, 8:
		return 90
	case 6, 7:
		return 270
	default:
		return 0
	}
}

// MirrorX is the horizontal scale factor: -1 for the mirrored
// orientations, 1 otherwise. The vertical scale is always 1.
func (o Orientation) MirrorX() float64 {
	switch o.Code {
	case 2, 4, 5, 7:
		return -1
	default:
		return 1
	}
}
