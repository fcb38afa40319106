//go:build cgo

package webp

import (
	"bytes"
	"errors"
	"testing"
)

var stdAlloc = func(n int) []byte { return make([]byte, n) }

func testContainer(t *testing.T) []byte {
	t.Helper()
	pix := makeBGRA(16, 16, 255)
	return mustEncode(t, pix, 16, 16, &Options{Quality: 100})
}

func TestMetadataSymmetry(t *testing.T) {
	enc := testContainer(t)
	meta := &Metadata{
		ICCProfile: []byte("fake icc profile payload"),
		EXIF:       []byte("II*\x00\x08\x00\x00\x00\x00\x00"),
		XMP:        []byte("<x:xmpmeta/>"),
	}
	boxed, err := SetMetadata(enc, meta, stdAlloc)
	if err != nil {
		t.Fatal(err)
	}

	for _, c := range []struct {
		kind MetadataKind
		want []byte
	}{
		{MetadataColorProfile, meta.ICCProfile},
		{MetadataEXIF, meta.EXIF},
		{MetadataXMP, meta.XMP},
	} {
		n := GetMetadataSize(boxed, c.kind)
		if n != len(c.want) {
			t.Fatalf("kind %d: size %d, want %d", c.kind, n, len(c.want))
		}
		got := make([]byte, n)
		ExtractMetadata(boxed, got, c.kind)
		if !bytes.Equal(got, c.want) {
			t.Fatalf("kind %d: payload mismatch", c.kind)
		}
	}

	// The wrapped image still decodes.
	w, h, ok := GetDimensions(boxed)
	if !ok || w != 16 || h != 16 {
		t.Fatalf("wrapped container probe failed: %dx%d ok=%v", w, h, ok)
	}
	out := make([]byte, h*w*4)
	if err := Decode(boxed, out, w*4); err != nil {
		t.Fatal(err)
	}
}

func TestMetadataAbsent(t *testing.T) {
	enc := testContainer(t)
	for kind := MetadataColorProfile; kind <= MetadataXMP; kind++ {
		if n := GetMetadataSize(enc, kind); n != 0 {
			t.Fatalf("kind %d: size %d on plain container", kind, n)
		}
		out := []byte("untouched")
		ExtractMetadata(enc, out, kind)
		if string(out) != "untouched" {
			t.Fatal("extract wrote into out for an absent chunk")
		}
	}
}

func TestMetadataMalformedContainer(t *testing.T) {
	for _, data := range [][]byte{
		nil,
		[]byte("not a container at all"),
		[]byte("RIFF\xff\xff\xff\xffWEBP"),
	} {
		for kind := MetadataColorProfile; kind <= MetadataXMP; kind++ {
			if n := GetMetadataSize(data, kind); n != 0 {
				t.Fatalf("size %d on malformed input", n)
			}
			ExtractMetadata(data, make([]byte, 4), kind)
		}
	}
}

func TestMetadataPartialExtract(t *testing.T) {
	enc := testContainer(t)
	boxed, err := SetMetadata(enc, &Metadata{XMP: []byte("0123456789")}, stdAlloc)
	if err != nil {
		t.Fatal(err)
	}
	out := make([]byte, 4)
	ExtractMetadata(boxed, out, MetadataXMP)
	if string(out) != "0123" {
		t.Fatalf("partial extract got %q", out)
	}
}

func TestSetMetadataNullAllocator(t *testing.T) {
	enc := testContainer(t)
	_, err := SetMetadata(enc, &Metadata{EXIF: []byte("x")}, nil)
	var we *Error
	if !errors.As(err, &we) || we.Code != CodeMuxInvalidArgument {
		t.Fatalf("want mux invalid-argument, got %v", err)
	}
}

func TestSetMetadataAllocatorFailure(t *testing.T) {
	enc := testContainer(t)
	_, err := SetMetadata(enc, &Metadata{EXIF: []byte("x")}, func(int) []byte { return nil })
	var we *Error
	if !errors.As(err, &we) || we.Code != CodeMuxMemoryError {
		t.Fatalf("want mux memory error, got %v", err)
	}
}

func TestEncodeWithMetadata(t *testing.T) {
	pix := makeBGRA(16, 16, 255)
	meta := &Metadata{XMP: []byte("<x:xmpmeta/>")}
	enc, err := Encode(pix, 16, 16, 64, &Options{Quality: 100}, meta, nil, stdAlloc)
	if err != nil {
		t.Fatal(err)
	}
	if n := GetMetadataSize(enc, MetadataXMP); n != len(meta.XMP) {
		t.Fatalf("XMP size %d, want %d", n, len(meta.XMP))
	}
	if n := GetMetadataSize(enc, MetadataEXIF); n != 0 {
		t.Fatalf("unexpected EXIF chunk of %d bytes", n)
	}
}
