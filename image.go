//go:build cgo

package webp

import (
	"image"
	"image/color"
	"io"

	"github.com/ezdiy/webp/util"
)

// DecodeImage decodes a WebP stream into an image.Image.
func DecodeImage(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	w, h, ok := GetDimensions(data)
	if !ok {
		return nil, decodeError(CodeDecBitstreamError)
	}
	pix := make([]byte, h*w*4)
	if err := Decode(data, pix, w*4); err != nil {
		return nil, err
	}
	return util.BGRAToImage(pix, w, h, w*4), nil
}

// Compatible API to read dimensions only.
func DecodeConfig(r io.Reader) (image.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return image.Config{}, err
	}
	w, h, ok := GetDimensions(data)
	if !ok {
		return image.Config{}, decodeError(CodeDecBitstreamError)
	}
	return image.Config{ColorModel: color.NRGBAModel, Width: w, Height: h}, nil
}

// EncodeImage encodes img with the given options, allocating the output
// internally.
func EncodeImage(w io.Writer, img image.Image, opt *Options) error {
	pix, stride := util.BGRAFromImage(img)
	b := img.Bounds()
	out, err := Encode(pix, b.Dx(), b.Dy(), stride, opt, nil, nil, defaultAlloc)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func defaultAlloc(size int) []byte { return make([]byte, size) }

func init() {
	image.RegisterFormat("webp", "RIFF????WEBP", DecodeImage, DecodeConfig)
}
