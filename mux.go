//go:build cgo

package webp

/*
#include <stdlib.h>
#include <webp/mux.h>
#include <webp/demux.h>

// WebPData wrappers are built here so the payload pointer never sits inside
// a Go-allocated struct when it crosses into the library. copy_data=1
// throughout: the mux must not keep referencing Go memory after the call.
static WebPMuxError muxSetImage(WebPMux *mux, const uint8_t *data, size_t size) {
	WebPData d = { data, size };
	return WebPMuxSetImage(mux, &d, 1);
}

static WebPMuxError muxSetChunk(WebPMux *mux, const char *fourcc, const uint8_t *data, size_t size) {
	WebPData d = { data, size };
	return WebPMuxSetChunk(mux, fourcc, &d, 1);
}
*/
import "C"

import "unsafe"

// Chunk FourCC tags, indexed by MetadataKind. The XMP tag carries a trailing
// space, as defined by the container format.
var chunkFourCC = [...]*C.char{
	MetadataColorProfile: C.CString("ICCP"),
	MetadataEXIF:         C.CString("EXIF"),
	MetadataXMP:          C.CString("XMP "),
}

// VP8X feature flags matching each chunk kind.
var chunkFlag = [...]C.uint32_t{
	MetadataColorProfile: C.ICCP_FLAG,
	MetadataEXIF:         C.EXIF_FLAG,
	MetadataXMP:          C.XMP_FLAG,
}

// demuxChunk opens a demuxer over data and looks up the first chunk of the
// given kind. The returned payload aliases memory owned by the demuxer;
// release must be called on every path and invalidates it. A malformed
// container, a missing VP8X flag or an absent chunk all read as a nil
// payload.
func demuxChunk(data []byte, kind MetadataKind) (payload []byte, release func()) {
	release = func() {}
	if len(data) == 0 || kind < MetadataColorProfile || kind > MetadataXMP {
		return nil, release
	}

	// The demuxer keeps referencing the container bytes between calls, so
	// they have to live in C memory.
	cdata := C.CBytes(data)
	var wd C.WebPData
	wd.bytes = (*C.uint8_t)(cdata)
	wd.size = C.size_t(len(data))

	dmux := C.WebPDemux(&wd)
	if dmux == nil {
		C.free(cdata)
		return nil, release
	}

	var iter C.WebPChunkIterator
	// Some containers omit the feature flag even when a chunk lookup would
	// succeed; honor the flag.
	if C.WebPDemuxGetI(dmux, C.WEBP_FF_FORMAT_FLAGS)&chunkFlag[kind] != 0 {
		C.WebPDemuxGetChunk(dmux, chunkFourCC[kind], 1, &iter)
	}
	release = func() {
		C.WebPDemuxReleaseChunkIterator(&iter)
		C.WebPDemuxDelete(dmux)
		C.free(cdata)
	}
	if iter.chunk.size == 0 {
		return nil, release
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(iter.chunk.bytes)), int(iter.chunk.size)), release
}

// GetMetadataSize reports the payload size in bytes of the requested chunk,
// or 0 when the chunk is absent or the container cannot be parsed. Absence
// and malformed input are deliberately indistinguishable.
func GetMetadataSize(data []byte, kind MetadataKind) int {
	chunk, release := demuxChunk(data, kind)
	defer release()
	return len(chunk)
}

// ExtractMetadata copies up to len(out) bytes of the requested chunk payload
// into out. Absent chunks and malformed containers leave out untouched. The
// caller is expected to size out from GetMetadataSize beforehand.
func ExtractMetadata(data, out []byte, kind MetadataKind) {
	chunk, release := demuxChunk(data, kind)
	defer release()
	copy(out, chunk)
}

// SetMetadata wraps already-encoded WebP bytes into a container carrying the
// metadata chunks present in meta, short-circuiting on the first failure.
// The assembled container is written into a buffer obtained from alloc and
// returned; a nil alloc result reports CodeMuxMemoryError even though
// assembly succeeded. Failures carry the mux library's own status code.
func SetMetadata(data []byte, meta *Metadata, alloc Allocator) ([]byte, error) {
	if alloc == nil {
		return nil, muxError(CodeMuxInvalidArgument)
	}
	if len(data) == 0 {
		return nil, muxError(CodeMuxInvalidArgument)
	}
	if meta == nil {
		meta = &Metadata{}
	}

	mux := C.WebPMuxNew()
	if mux == nil {
		return nil, muxError(CodeMuxMemoryError)
	}
	defer func() {
		if mux != nil {
			C.WebPMuxDelete(mux)
		}
	}()

	if status := C.muxSetImage(mux, (*C.uint8_t)(&data[0]), C.size_t(len(data))); status != C.WEBP_MUX_OK {
		return nil, muxError(int(status))
	}

	chunks := []struct {
		kind MetadataKind
		data []byte
	}{
		{MetadataColorProfile, meta.ICCProfile},
		{MetadataEXIF, meta.EXIF},
		{MetadataXMP, meta.XMP},
	}
	for _, c := range chunks {
		if len(c.data) == 0 {
			continue
		}
		if status := C.muxSetChunk(mux, chunkFourCC[c.kind], (*C.uint8_t)(&c.data[0]), C.size_t(len(c.data))); status != C.WEBP_MUX_OK {
			return nil, muxError(int(status))
		}
	}

	var assembled C.WebPData
	status := C.WebPMuxAssemble(mux, &assembled)
	C.WebPMuxDelete(mux)
	mux = nil
	if status != C.WEBP_MUX_OK {
		return nil, muxError(int(status))
	}
	defer C.WebPDataClear(&assembled)

	out := alloc(int(assembled.size))
	if out == nil {
		return nil, muxError(CodeMuxMemoryError)
	}
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(assembled.bytes)), int(assembled.size)))
	return out, nil
}
