package webp

import "testing"

// minimal little-endian TIFF with a single IFD0 entry: orientation = 6.
var exifOrientation6 = []byte{
	'I', 'I', 0x2a, 0x00, // header
	0x08, 0x00, 0x00, 0x00, // IFD0 offset
	0x01, 0x00, // one entry
	0x12, 0x01, 0x03, 0x00, // tag 0x0112, type SHORT
	0x01, 0x00, 0x00, 0x00, // count
	0x06, 0x00, 0x00, 0x00, // value
	0x00, 0x00, 0x00, 0x00, // no next IFD
}

func TestExifOrientation(t *testing.T) {
	o, err := ExifOrientation(exifOrientation6)
	if err != nil {
		t.Fatal(err)
	}
	if o != 6 {
		t.Fatalf("orientation %d, want 6", o)
	}

	// JPEG-style prefixed payloads decode the same.
	prefixed := append([]byte("Exif\x00\x00"), exifOrientation6...)
	if o, err = ExifOrientation(prefixed); err != nil || o != 6 {
		t.Fatalf("prefixed payload: %d, %v", o, err)
	}

	if _, err = ExifOrientation([]byte("not exif")); err == nil {
		t.Fatal("garbage accepted")
	}
}
