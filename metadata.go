package webp

// MetadataKind identifies one of the auxiliary chunk kinds a WebP container
// can carry next to the image payload.
type MetadataKind int

const (
	MetadataColorProfile MetadataKind = iota // "ICCP" chunk
	MetadataEXIF                             // "EXIF" chunk
	MetadataXMP                              // "XMP " chunk, trailing space included
)

// Metadata bundles the auxiliary blobs for Encode and SetMetadata. An empty
// slice means "absent, do not attach". The bridge never retains the slices.
type Metadata struct {
	ICCProfile []byte
	EXIF       []byte
	XMP        []byte
}

func (m *Metadata) present() bool {
	return m != nil && (len(m.ICCProfile) > 0 || len(m.EXIF) > 0 || len(m.XMP) > 0)
}
