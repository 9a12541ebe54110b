package jpegtopdf

import (
	"bytes"
	"fmt"
	"image/color"
	"image/jpeg"

	"codeberg.org/go-pdf/fpdf"
)

// colorFormat is the color layout of a JPEG's compressed stream, as reported
// by its header. It maps 1:1 onto a PDF color space.
type colorFormat int

const (
	formatGrayscale colorFormat = iota
	formatRGB
	formatCMYK
)

func (f colorFormat) String() string {
	switch f {
	case formatGrayscale:
		return "DeviceGray"
	case formatRGB:
		return "DeviceRGB"
	case formatCMYK:
		return "DeviceCMYK"
	}
	return "unknown"
}

// imageInfo is everything we need from a JPEG header to compose its page.
type imageInfo struct {
	width  int
	height int
	format colorFormat
}

// decodeImageInfo reads the JPEG header only. The entropy-coded data is
// never decoded.
func decodeImageInfo(data []byte) (imageInfo, error) {
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return imageInfo{}, fmt.Errorf("%w: %v", ErrImageInfo, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return imageInfo{}, ErrMissingImageInfo
	}
	info := imageInfo{width: cfg.Width, height: cfg.Height}
	switch cfg.ColorModel {
	case color.GrayModel:
		info.format = formatGrayscale
	case color.YCbCrModel:
		info.format = formatRGB
	case color.CMYKModel:
		info.format = formatCMYK
	default:
		return imageInfo{}, ErrMissingImageInfo
	}
	return info, nil
}

// addPage composes one page: decode the header, resolve the EXIF
// orientation, optionally strip EXIF from the payload, size the page to the
// display dimensions, and place the untouched compressed stream with the
// orientation's transform.
func (b *Builder) addPage(pdf *fpdf.Fpdf, index int, data []byte) error {
	info, err := decodeImageInfo(data)
	if err != nil {
		return err
	}

	sections, err := parseSections(data)
	if err != nil {
		return err
	}
	ori := Orientation{
		Code:   resolveOrientation(sections),
		Width:  info.width,
		Height: info.height,
	}

	payload := data
	if b.stripExif {
		payload, err = stripExifSegment(sections, data)
		if err != nil {
			return err
		}
	}

	b.verbose("image %v: %vx%v %v orientation %v\n",
		index, info.width, info.height, info.format, ori.Code)

	pageW := b.toPoints(ori.DisplayWidth())
	pageH := b.toPoints(ori.DisplayHeight())
	pdf.AddPageFormat("P", fpdf.SizeType{Wd: pageW, Ht: pageH})

	name := fmt.Sprintf("img%v", index)
	opts := fpdf.ImageOptions{ImageType: "JPG", ReadDpi: false}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(payload))
	if pdf.Err() {
		// fpdf re-reads the header on registration, so this only trips on
		// images whose header decoded but fpdf cannot embed.
		return fmt.Errorf("%w: %v", ErrImageInfo, pdf.Error())
	}

	// The placement matrix is built from successive cm operators, outermost
	// first: translate, rotate, mirror. The image itself is drawn as a unit
	// square scaled to the raw (pre-rotation) pixel dimensions, so the
	// combined transform lands it exactly on the page.
	pdf.TransformBegin()
	if tx, ty := b.toPoints(ori.TranslateX()), b.toPoints(ori.TranslateY()); tx != 0 || ty != 0 {
		pdf.Transform(fpdf.TransformMatrix{A: 1, D: 1, E: tx, F: ty})
	}
	if m, ok := rotationMatrix(ori.RotateDegrees()); ok {
		pdf.Transform(m)
	}
	if ori.MirrorX() != 1 {
		pdf.Transform(fpdf.TransformMatrix{A: -1, D: 1})
	}
	imgW := b.toPoints(info.width)
	imgH := b.toPoints(info.height)
	pdf.ImageOptions(name, 0, pageH-imgH, imgW, imgH, false, opts, 0, "")
	pdf.TransformEnd()

	return nil
}

// toPoints converts a pixel count to points at the configured resolution.
func (b *Builder) toPoints(px int) float64 {
	return float64(px) * 72.0 / b.dpi
}

// rotationMatrix returns the counterclockwise rotation about the origin for
// the quarter-turn angles the orientation table produces. Exact entries,
// not trig, so the emitted operators stay clean.
func rotationMatrix(degrees float64) (fpdf.TransformMatrix, bool) {
	switch degrees {
	case 90:
		return fpdf.TransformMatrix{B: 1, C: -1}, true
	case 180:
		return fpdf.TransformMatrix{A: -1, D: -1}, true
	case 270:
		return fpdf.TransformMatrix{B: -1, C: 1}, true
	default:
		return fpdf.TransformMatrix{}, false
	}
}
