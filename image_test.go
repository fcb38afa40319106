//go:build cgo

package webp

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestImageRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 20, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: byte(x * 12), G: byte(y * 25), B: 200, A: 255})
		}
	}
	src.SetNRGBA(3, 3, color.NRGBA{R: 1, G: 2, B: 3, A: 128})

	var buf bytes.Buffer
	if err := EncodeImage(&buf, src, &Options{Quality: 100}); err != nil {
		t.Fatal(err)
	}

	// The init registration makes the stream sniffable by the image package.
	cfg, name, err := image.DecodeConfig(bytes.NewReader(buf.Bytes()))
	if err != nil || name != "webp" {
		t.Fatalf("sniff: %q, %v", name, err)
	}
	if cfg.Width != 20 || cfg.Height != 10 {
		t.Fatalf("config %dx%d", cfg.Width, cfg.Height)
	}

	img, name, err := image.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil || name != "webp" {
		t.Fatalf("decode: %q, %v", name, err)
	}
	for _, p := range []image.Point{{0, 0}, {19, 9}, {3, 3}} {
		if got, want := img.At(p.X, p.Y), src.NRGBAAt(p.X, p.Y); got != color.Color(want) {
			t.Fatalf("pixel %v: got %+v, want %+v", p, got, want)
		}
	}
}
