package webp

import (
	"bytes"

	"github.com/rwcarlsen/goexif/exif"
)

var exifHeader = []byte("Exif\x00\x00")

// ExifOrientation reads the orientation tag (1-8) out of an EXIF chunk
// payload, as returned by ExtractMetadata. Some writers prefix the chunk with
// the JPEG-style "Exif\0\0" marker; both layouts are accepted.
func ExifOrientation(data []byte) (int, error) {
	data = bytes.TrimPrefix(data, exifHeader)
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, err
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 0, err
	}
	return tag.Int(0)
}
