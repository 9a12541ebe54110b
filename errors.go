package jpegtopdf

import (
	"errors"
	"fmt"
)

// Categories of failure while turning JPEGs into a PDF. Wrapped errors
// carry the underlying detail; match with errors.Is.
var (
	// ErrImageInfo means a JPEG header could not be decoded.
	ErrImageInfo = errors.New("failed to read image info")

	// ErrMissingImageInfo means the header decoded but yielded no usable
	// dimensions or color format. Should not happen with a conforming decoder.
	ErrMissingImageInfo = errors.New("unexpectedly failed to read image info")

	// ErrImageSections means the JPEG segment structure (or its EXIF block)
	// could not be parsed or rewritten.
	ErrImageSections = errors.New("failed to read image sections")

	// ErrPDFWrite means the assembled document could not be serialized.
	ErrPDFWrite = errors.New("failed to write PDF")

	// ErrNoImages is returned when building a document with no images.
	ErrNoImages = errors.New("no images to convert")
)

// Error reports a failed conversion. Index is the zero-based position of the
// offending input image. A serialization failure carries index 0, since all
// images were already composed by the time the document is written out.
type Error struct {
	Index int
	Cause error
}

func (e *Error) Error() string {
	if errors.Is(e.Cause, ErrPDFWrite) {
		return e.Cause.Error()
	}
	return fmt.Sprintf("error with JPEG index %d: %v", e.Index, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
