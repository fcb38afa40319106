//go:build cgo

package webp

/*
#include <stdint.h>
#include <stdlib.h>
#include <webp/encode.h>

extern int goWebPProgress(int percent, uintptr_t handle);

static int progressShim(int percent, const WebPPicture *pic) {
	return goWebPProgress(percent, (uintptr_t)pic->user_data);
}

// Function pointer fields are not assignable from Go, wire them up here.
static void setProgressHook(WebPPicture *pic, uintptr_t handle) {
	pic->user_data = (void *)handle;
	pic->progress_hook = progressShim;
}

static void setMemoryWriter(WebPPicture *pic, WebPMemoryWriter *wrt) {
	pic->writer = WebPMemoryWrite;
	pic->custom_ptr = wrt;
}
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"
)

// Encode compresses a BGRA pixel buffer. The result is written into a buffer
// obtained from alloc and returned; ownership of that buffer passes to the
// caller. Quality 100 selects lossless mode. meta blobs with non-zero length
// are attached to the resulting container. progress, when non-nil, is invoked
// with a 0-100 percentage during the encode.
//
// Failures carry the encoder's own status code: ErrNullParameter for a nil
// allocator, ErrVersionMismatch when the configuration cannot be initialized,
// ErrOutOfMemory when alloc returns nil even though encoding succeeded.
func Encode(pix []byte, width, height, stride int, opt *Options, meta *Metadata, progress ProgressFunc, alloc Allocator) ([]byte, error) {
	if alloc == nil {
		return nil, ErrNullParameter
	}
	if opt == nil {
		opt = &DefaultOptions
	}

	var config C.WebPConfig
	var pic C.WebPPicture
	if C.WebPConfigPreset(&config, C.WebPPreset(opt.Preset), C.float(opt.Quality)) == 0 ||
		C.WebPPictureInit(&pic) == 0 {
		return nil, ErrVersionMismatch
	}

	config.method = C.int(opt.Method)
	config.thread_level = 1

	if opt.Quality == 100 {
		config.lossless = 1
		pic.use_argb = 1
		switch opt.Preset {
		case PresetPhoto:
			config.image_hint = C.WEBP_HINT_PHOTO
		case PresetPicture:
			config.image_hint = C.WEBP_HINT_PICTURE
		case PresetDrawing:
			config.image_hint = C.WEBP_HINT_GRAPH
		}
	} else {
		if opt.TargetSize > 0 {
			config.target_size = C.int(opt.TargetSize)
		}
		// Icon and text presets disable filtering, keep it that way.
		if opt.Preset < PresetIcon {
			config.filter_strength = C.int(opt.FilterStrength)
		}
		config.filter_type = C.int(opt.FilterType)
		config.filter_sharpness = C.int(opt.FilterSharpness)
		config.sns_strength = C.int(opt.SNSStrength)
	}

	pic.width = C.int(width)
	pic.height = C.int(height)

	// The writer lives in C memory: libwebp stores a pointer to it inside
	// the picture, which the cgo pointer rules forbid for Go memory.
	wrt := (*C.WebPMemoryWriter)(C.calloc(1, C.sizeof_WebPMemoryWriter))
	C.WebPMemoryWriterInit(wrt)
	C.setMemoryWriter(&pic, wrt)
	defer func() {
		C.WebPMemoryWriterClear(wrt)
		C.free(unsafe.Pointer(wrt))
		C.WebPPictureFree(&pic)
	}()

	if hasTransparency(pix, width, height, stride) {
		if C.WebPPictureImportBGRA(&pic, (*C.uint8_t)(&pix[0]), C.int(stride)) == 0 {
			return nil, ErrOutOfMemory
		}
	} else {
		// No transparency anywhere, import ignoring the alpha channel.
		if C.WebPPictureImportBGRX(&pic, (*C.uint8_t)(&pix[0]), C.int(stride)) == 0 {
			return nil, ErrOutOfMemory
		}
	}

	if progress != nil {
		h := cgo.NewHandle(progress)
		defer h.Delete()
		C.setProgressHook(&pic, C.uintptr_t(h))
	}

	if C.WebPEncode(&config, &pic) == 0 {
		return nil, encodeError(int(pic.error_code))
	}

	enc := unsafe.Slice((*byte)(unsafe.Pointer(wrt.mem)), int(wrt.size))
	if meta.present() {
		return SetMetadata(enc, meta, alloc)
	}
	out := alloc(len(enc))
	if out == nil {
		return nil, ErrOutOfMemory
	}
	copy(out, enc)
	return out, nil
}
