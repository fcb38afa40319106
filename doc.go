// Package webp is a thin bridge over libwebp, libwebpmux and libwebpdemux.
//
// It marshals caller-owned pixel and container buffers across the library
// boundary, translates encoder presets and tuning knobs, and reads or writes
// the auxiliary metadata chunks (ICC profile, EXIF, XMP) a WebP container can
// carry. All compression and container parsing is done by libwebp itself;
// this package only orchestrates the calls.
//
// Variable-length results (encode output, assembled containers) are returned
// through a caller-supplied Allocator so the caller controls every output
// allocation. Status codes reported by libwebp are preserved verbatim in
// Error.Code.
//
// Builds without cgo fall back to golang.org/x/image/webp: decoding and the
// dimension probe keep working, encoding and container mutation report an
// error.
package webp
