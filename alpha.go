package webp

// hasTransparency reports whether any pixel of a BGRA buffer is less than
// fully opaque. Rows are scanned top to bottom, left to right, testing only
// the alpha byte of each 4-byte pixel. Opaque images are imported without an
// alpha plane, which encodes smaller and faster.
func hasTransparency(pix []byte, width, height, stride int) bool {
	for y := 0; y < height; y++ {
		row := pix[y*stride:]
		for x := 3; x < width*4; x += 4 {
			if row[x] < 255 {
				return true
			}
		}
	}
	return false
}
