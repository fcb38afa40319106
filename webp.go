//go:build cgo

package webp

/*
#cgo pkg-config: libwebp libwebpmux libwebpdemux
#include <webp/decode.h>

// The output union is not addressable from cgo, and the config must not
// cross the boundary once it holds the output pointer, so the whole decode
// happens here. Returns -1 when the decoder ABI does not match the headers.
static VP8StatusCode decodeBGRA(const uint8_t *data, size_t data_size,
                                uint8_t *out, size_t out_size, int stride) {
	WebPDecoderConfig config;
	VP8StatusCode status;
	if (!WebPInitDecoderConfig(&config)) {
		return (VP8StatusCode)-1;
	}
	config.output.colorspace = MODE_BGRA;
	config.output.is_external_memory = 1;
	config.output.u.RGBA.rgba = out;
	config.output.u.RGBA.size = out_size;
	config.output.u.RGBA.stride = stride;
	status = WebPDecode(data, data_size, &config);
	// The pixel buffer is caller-owned, this only drops decoder-internal
	// state.
	WebPFreeDecBuffer(&config.output);
	return status;
}
*/
import "C"

// GetDimensions probes the pixel dimensions of an encoded WebP image.
// ok is false when the data is not recognized as a WebP bitstream.
func GetDimensions(data []byte) (width, height int, ok bool) {
	if len(data) == 0 {
		return
	}
	var w, h C.int
	if C.WebPGetInfo((*C.uint8_t)(&data[0]), C.size_t(len(data)), &w, &h) == 0 {
		return
	}
	return int(w), int(h), true
}

// Decode decompresses a WebP image into out, writing 8-bit BGRA rows stride
// bytes apart. The caller must size out to at least height*stride, typically
// after probing with GetDimensions; no bounds validation happens here beyond
// what libwebp itself performs. Returns ErrVersionMismatch if the decoder
// configuration cannot be initialized, otherwise the VP8 status code on
// failure.
func Decode(data, out []byte, stride int) error {
	if len(data) == 0 || len(out) == 0 {
		return decodeError(CodeDecNotEnoughData)
	}
	status := C.decodeBGRA((*C.uint8_t)(&data[0]), C.size_t(len(data)),
		(*C.uint8_t)(&out[0]), C.size_t(len(out)), C.int(stride))
	if int(status) == CodeVersionMismatch {
		return ErrVersionMismatch
	}
	return decodeError(int(status))
}
