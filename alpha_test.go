package webp

import "testing"

func TestHasTransparency(t *testing.T) {
	const w, h = 8, 6
	opaque := func() []byte {
		pix := make([]byte, w*h*4)
		for i := 3; i < len(pix); i += 4 {
			pix[i] = 255
		}
		return pix
	}

	if hasTransparency(opaque(), w, h, w*4) {
		t.Fatal("opaque buffer reported transparent")
	}

	// A single translucent pixel must be found regardless of position.
	for _, pos := range []struct{ x, y int }{
		{0, 0},
		{w - 1, h - 1},
		{3, 2},
	} {
		pix := opaque()
		pix[(pos.y*w+pos.x)*4+3] = 254
		if !hasTransparency(pix, w, h, w*4) {
			t.Fatalf("missed transparency at %d,%d", pos.x, pos.y)
		}
	}
}

func TestHasTransparencyPadding(t *testing.T) {
	// Stride wider than width*4: padding bytes must be ignored.
	const w, h, stride = 4, 3, 24
	pix := make([]byte, h*stride)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix[y*stride+x*4+3] = 255
		}
		// Translucent-looking garbage in the padding.
		pix[y*stride+w*4+3] = 1
	}
	if hasTransparency(pix, w, h, stride) {
		t.Fatal("padding bytes leaked into the alpha scan")
	}
}
