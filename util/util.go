package util

import (
	"image"
	"image/draw"
)

// GetPixStride returns the raw pixel slice and row stride of the 4-byte and
// 1-byte per pixel image kinds this module deals in.
func GetPixStride(img image.Image) ([]byte, int) {
	switch i := img.(type) {
	case *image.NRGBA:
		return i.Pix, i.Stride
	case *image.RGBA:
		return i.Pix, i.Stride
	case *image.Gray:
		return i.Pix, i.Stride
	}
	return nil, 0
}

// SwapRB exchanges the first and third channel of every 4-byte pixel in
// place, converting between RGBA and BGRA layouts.
func SwapRB(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}
}

// BGRAFromImage renders img into a tightly packed, non-premultiplied BGRA
// buffer and returns it with its row stride. The caller's pixels are never
// modified.
func BGRAFromImage(img image.Image) (pix []byte, stride int) {
	b := img.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Bounds(), img, b.Min, draw.Src)
	SwapRB(n.Pix)
	return n.Pix, n.Stride
}

// BGRAToImage wraps a BGRA buffer into an image.Image, converting in place.
func BGRAToImage(pix []byte, width, height, stride int) image.Image {
	SwapRB(pix)
	return &image.NRGBA{Pix: pix, Stride: stride, Rect: image.Rect(0, 0, width, height)}
}
