//go:build !cgo

package webp

import (
	"bytes"
	"image"
	"io"

	"github.com/getlantern/errors"
	"golang.org/x/image/webp"

	"github.com/ezdiy/webp/util"
)

// Pure Go fallback. Decoding delegates to golang.org/x/image/webp; encoding
// and container mutation need libwebp and fail with ErrNoCgo. Metadata
// queries report "absent", matching the behavior on unparseable containers.

var ErrNoCgo = errors.New("webp: operation requires cgo and libwebp")

// GetDimensions probes the pixel dimensions of an encoded WebP image.
func GetDimensions(data []byte) (width, height int, ok bool) {
	cfg, err := webp.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, false
	}
	return cfg.Width, cfg.Height, true
}

// Decode decompresses a WebP image into out, writing 8-bit BGRA rows stride
// bytes apart. out must hold at least height*stride bytes.
func Decode(data, out []byte, stride int) error {
	img, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		return decodeError(CodeDecBitstreamError)
	}
	pix, pstride := util.BGRAFromImage(img)
	b := img.Bounds()
	w := b.Dx() * 4
	if len(out) < (b.Dy()-1)*stride+w {
		return decodeError(CodeDecInvalidParam)
	}
	for y := 0; y < b.Dy(); y++ {
		copy(out[y*stride:y*stride+w], pix[y*pstride:])
	}
	return nil
}

// Encode is unavailable without cgo.
func Encode(pix []byte, width, height, stride int, opt *Options, meta *Metadata, progress ProgressFunc, alloc Allocator) ([]byte, error) {
	if alloc == nil {
		return nil, ErrNullParameter
	}
	return nil, ErrNoCgo
}

// GetMetadataSize always reports absence without libwebpdemux.
func GetMetadataSize(data []byte, kind MetadataKind) int { return 0 }

// ExtractMetadata is a no-op without libwebpdemux.
func ExtractMetadata(data, out []byte, kind MetadataKind) {}

// SetMetadata is unavailable without cgo.
func SetMetadata(data []byte, meta *Metadata, alloc Allocator) ([]byte, error) {
	if alloc == nil {
		return nil, muxError(CodeMuxInvalidArgument)
	}
	return nil, ErrNoCgo
}

// DecodeImage decodes a WebP stream into an image.Image.
func DecodeImage(r io.Reader) (image.Image, error) {
	return webp.Decode(r)
}

// Compatible API to read dimensions only.
func DecodeConfig(r io.Reader) (image.Config, error) {
	return webp.DecodeConfig(r)
}

// EncodeImage is unavailable without cgo.
func EncodeImage(w io.Writer, img image.Image, opt *Options) error {
	return ErrNoCgo
}

func init() {
	image.RegisterFormat("webp", "RIFF????WEBP", DecodeImage, DecodeConfig)
}
