// Package jpegtopdf creates PDFs from JPEG images.
//
// Each image becomes one page, sized to the image's display dimensions at
// the configured DPI. The compressed image data is embedded directly in the
// PDF without any re-encoding; EXIF orientation is honored by sizing and
// transforming the page placement instead of rotating pixels.
package jpegtopdf

import (
	"fmt"
	"io"
	"time"

	"codeberg.org/go-pdf/fpdf"
)

// DefaultDPI is the pixel-to-point resolution used when none is configured.
const DefaultDPI = 300.0

// Builder accumulates images and settings for one PDF document. Images are
// rendered in the order they were added. The zero value is not usable; call
// New.
type Builder struct {
	images    [][]byte
	dpi       float64
	stripExif bool
	title     string
	created   time.Time
	modified  time.Time

	Verbose bool // If true, print debug information
}

// New returns a Builder with default settings: 300 DPI, EXIF retained,
// empty title, timestamps taken at build time.
func New() *Builder {
	return &Builder{dpi: DefaultDPI}
}

// AddImage appends one JPEG to the document. Page order follows call order.
func (b *Builder) AddImage(jpeg []byte) *Builder {
	b.images = append(b.images, jpeg)
	return b
}

// SetDPI sets the resolution used to convert pixel dimensions to page
// points. Values <= 0 are ignored.
func (b *Builder) SetDPI(dpi float64) *Builder {
	if dpi > 0 {
		b.dpi = dpi
	}
	return b
}

// StripExif controls whether EXIF metadata is removed from the embedded
// image data. The compressed pixel stream is unaffected either way.
func (b *Builder) StripExif(strip bool) *Builder {
	b.stripExif = strip
	return b
}

// SetTitle sets the document title.
func (b *Builder) SetTitle(title string) *Builder {
	b.title = title
	return b
}

// SetCreationDate overrides the document creation timestamp.
func (b *Builder) SetCreationDate(t time.Time) *Builder {
	b.created = t
	return b
}

// SetModificationDate overrides the document modification timestamp.
func (b *Builder) SetModificationDate(t time.Time) *Builder {
	b.modified = t
	return b
}

// CreatePDF composes one page per added image and writes the finished
// document to out. Processing is fail-fast: the first bad image aborts the
// build with an *Error carrying its index, and nothing is written to out.
//
// A Builder with no images is rejected with ErrNoImages rather than
// producing an empty document.
func (b *Builder) CreatePDF(out io.Writer) error {
	if len(b.images) == 0 {
		return ErrNoImages
	}

	now := time.Now()
	created := b.created
	if created.IsZero() {
		created = now
	}
	modified := b.modified
	if modified.IsZero() {
		modified = now
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(b.title, true)
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(modified)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	// Sorted resource catalogs keep the output deterministic for identical
	// inputs and timestamps.
	pdf.SetCatalogSort(true)

	for index, image := range b.images {
		if err := b.addPage(pdf, index, image); err != nil {
			return &Error{Index: index, Cause: err}
		}
	}

	if err := pdf.Output(out); err != nil {
		return &Error{Index: 0, Cause: fmt.Errorf("%w: %v", ErrPDFWrite, err)}
	}
	return nil
}

func (b *Builder) verbose(format string, args ...interface{}) {
	if b.Verbose {
		fmt.Printf(format, args...)
	}
}

// CreatePDFFromJPEGs writes a PDF composed of the given JPEGs to out.
// A dpi of 0 (or less) means DefaultDPI.
//
// Deprecated: Use New and the Builder methods instead.
func CreatePDFFromJPEGs(jpegs [][]byte, out io.Writer, dpi float64) error {
	b := New()
	for _, image := range jpegs {
		b.AddImage(image)
	}
	return b.SetDPI(dpi).CreatePDF(out)
}
