package jpegtopdf

import "encoding/binary"

// Helpers for constructing minimal but structurally valid JPEGs in memory:
// SOI, optional APP segments, SOF0, SOS, synthetic scan data, EOI. The scan
// data is never entropy-decoded by anything in the pipeline, so it can be an
// arbitrary distinctive byte pattern (free of 0xFF).

type testJPEG struct {
	width       int
	height      int
	orientation uint16 // 0 means no EXIF segment
	components  int    // 1 = grayscale, 3 = YCbCr, 4 = Adobe CMYK
	app1        []byte // overrides the generated EXIF segment body if set
	scan        []byte // overrides the default scan bytes if set
}

var defaultScanData = []byte{
	0x5a, 0x23, 0x7e, 0x11, 0x42, 0x09, 0x6b, 0x30,
	0x19, 0x77, 0x04, 0x5d, 0x2c, 0x63, 0x38, 0x01,
}

func (tj testJPEG) bytes() []byte {
	if tj.components == 0 {
		tj.components = 1
	}
	if tj.scan == nil {
		tj.scan = defaultScanData
	}

	out := []byte{0xff, 0xd8} // SOI
	if tj.app1 != nil {
		out = appendSegment(out, 0xe1, tj.app1)
	} else if tj.orientation != 0 {
		out = appendSegment(out, 0xe1, exifSegmentBody(tj.orientation))
	}
	if tj.components == 4 {
		out = appendSegment(out, 0xee, adobeSegmentBody())
	}
	out = appendSegment(out, 0xc0, tj.sofBody())
	out = appendSegment(out, 0xda, tj.sosBody())
	out = append(out, tj.scan...)
	out = append(out, 0xff, 0xd9) // EOI
	return out
}

// appendSegment writes a marker segment: 0xFF, marker, big-endian length
// (covering itself plus the body), body.
func appendSegment(out []byte, marker byte, body []byte) []byte {
	out = append(out, 0xff, marker)
	out = binary.BigEndian.AppendUint16(out, uint16(len(body)+2))
	return append(out, body...)
}

func (tj testJPEG) sofBody() []byte {
	body := []byte{8} // precision
	body = binary.BigEndian.AppendUint16(body, uint16(tj.height))
	body = binary.BigEndian.AppendUint16(body, uint16(tj.width))
	body = append(body, byte(tj.components))
	for c := 1; c <= tj.components; c++ {
		sampling := byte(0x11)
		if tj.components == 3 && c == 1 {
			sampling = 0x22
		}
		quant := byte(0)
		if c == 2 || c == 3 {
			quant = 1
		}
		body = append(body, byte(c), sampling, quant)
	}
	return body
}

func (tj testJPEG) sosBody() []byte {
	body := []byte{byte(tj.components)}
	for c := 1; c <= tj.components; c++ {
		tables := byte(0x00)
		if c == 2 || c == 3 {
			tables = 0x11
		}
		body = append(body, byte(c), tables)
	}
	return append(body, 0x00, 0x3f, 0x00) // spectral selection, approximation
}

// exifPreamble marks an APP1 segment as EXIF.
var exifPreamble = []byte{'E', 'x', 'i', 'f', 0, 0}

// exifSegmentBody builds an APP1 body holding a little-endian TIFF with a
// single IFD0 entry: the orientation tag (0x0112, SHORT, count 1).
func exifSegmentBody(orientation uint16) []byte {
	body := append([]byte{}, exifPreamble...)
	body = append(body, 'I', 'I', 0x2a, 0x00) // TIFF header, little-endian
	body = append(body, 0x08, 0x00, 0x00, 0x00)
	body = append(body, 0x01, 0x00)             // one entry
	body = append(body, 0x12, 0x01, 0x03, 0x00) // tag 0x0112, type SHORT
	body = append(body, 0x01, 0x00, 0x00, 0x00) // count 1
	body = append(body, byte(orientation), byte(orientation>>8), 0x00, 0x00)
	body = append(body, 0x00, 0x00, 0x00, 0x00) // no next IFD
	return body
}

// asciiOrientationSegmentBody builds an EXIF block whose orientation tag
// holds ASCII instead of shorts.
func asciiOrientationSegmentBody() []byte {
	body := append([]byte{}, exifPreamble...)
	body = append(body, 'I', 'I', 0x2a, 0x00)
	body = append(body, 0x08, 0x00, 0x00, 0x00)
	body = append(body, 0x01, 0x00)
	body = append(body, 0x12, 0x01, 0x02, 0x00) // tag 0x0112, type ASCII
	body = append(body, 0x04, 0x00, 0x00, 0x00) // count 4
	body = append(body, 'a', 'b', 'c', 0x00)
	body = append(body, 0x00, 0x00, 0x00, 0x00)
	return body
}

// overrunJPEG yields a buffer whose header decodes normally but whose
// container cannot be split: after a valid SOF0 it declares an APP1 segment
// far longer than the remaining bytes. The JFIF APP0 marks the file so that
// header-only decoding stops at the SOF; only the segment parser sees the
// damage.
func overrunJPEG() []byte {
	tj := testJPEG{width: 10, height: 10, components: 1}
	out := []byte{0xff, 0xd8} // SOI
	out = appendSegment(out, 0xe0, jfifSegmentBody())
	out = appendSegment(out, 0xc0, tj.sofBody())
	return append(out, 0xff, 0xe1, 0xff, 0xff) // APP1 claiming 65533 absent bytes
}

// jfifSegmentBody builds a minimal APP0 JFIF body: version 1.1, no density
// units, 1x1 aspect, no thumbnail.
func jfifSegmentBody() []byte {
	return []byte{'J', 'F', 'I', 'F', 0x00, 0x01, 0x01, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00}
}

func adobeSegmentBody() []byte {
	return []byte{'A', 'd', 'o', 'b', 'e', 0x00, 0x64, 0, 0, 0, 0, 0x00}
}
