package jpegtopdf

import (
	"bytes"
	"fmt"

	exif "github.com/dsoprea/go-exif/v3"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure/v2"
)

const orientationTagName = "Orientation"

// parseSections splits a JPEG into its marker segments without touching the
// entropy-coded data.
func parseSections(data []byte) (*jpegstructure.SegmentList, error) {
	jmp := jpegstructure.NewJpegMediaParser()
	intfc, err := jmp.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageSections, err)
	}
	return intfc.(*jpegstructure.SegmentList), nil
}

// resolveOrientation extracts the EXIF orientation code from the parsed
// segments. Every failure mode short of a malformed container falls back to
// the default orientation: no EXIF segment, an unparseable EXIF block, a
// missing orientation tag, or a tag holding something other than shorts.
func resolveOrientation(sl *jpegstructure.SegmentList) uint16 {
	rootIfd, _, err := sl.Exif()
	if err != nil {
		return DefaultOrientation
	}
	return orientationFromIfd(rootIfd)
}

func orientationFromIfd(rootIfd *exif.Ifd) uint16 {
	if rootIfd == nil {
		return DefaultOrientation
	}
	entries, err := rootIfd.FindTagWithName(orientationTagName)
	if err != nil || len(entries) == 0 {
		return DefaultOrientation
	}
	value, err := entries[0].Value()
	if err != nil {
		return DefaultOrientation
	}
	shorts, ok := value.([]uint16)
	if !ok || len(shorts) == 0 {
		return DefaultOrientation
	}
	return shorts[0]
}

// stripExifSegment removes the EXIF segment (if any) and re-serializes the
// container. The scan data is copied through verbatim, so the compressed
// pixel stream is byte-identical to the input.
func stripExifSegment(sl *jpegstructure.SegmentList, original []byte) ([]byte, error) {
	wasDropped, err := sl.DropExif()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageSections, err)
	}
	if !wasDropped {
		return original, nil
	}
	buf := new(bytes.Buffer)
	if err := sl.Write(buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageSections, err)
	}
	return buf.Bytes(), nil
}
