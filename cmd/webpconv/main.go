package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/ezdiy/webp"
)

type encFun func(w io.Writer, i image.Image) error

var (
	quality  = flag.Float64("q", 75, "encode quality 0-100, 100 is lossless")
	preset   = flag.String("preset", "default", "encode preset: default|picture|photo|drawing|icon|text")
	method   = flag.Int("m", 4, "encode effort 0-6")
	info     = flag.Bool("info", false, "print dimensions and metadata of a webp file, no conversion")
	keepMeta = flag.Bool("meta", false, "carry ICCP/EXIF/XMP chunks over when recoding webp to webp")
)

var presets = map[string]webp.Preset{
	"default": webp.PresetDefault,
	"picture": webp.PresetPicture,
	"photo":   webp.PresetPhoto,
	"drawing": webp.PresetDrawing,
	"icon":    webp.PresetIcon,
	"text":    webp.PresetText,
}

func printInfo(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	w, h, ok := webp.GetDimensions(data)
	if !ok {
		log.Fatalf("%s: not a webp file", path)
	}
	fmt.Printf("%s: %dx%d\n", path, w, h)
	for _, c := range []struct {
		kind webp.MetadataKind
		name string
	}{
		{webp.MetadataColorProfile, "ICCP"},
		{webp.MetadataEXIF, "EXIF"},
		{webp.MetadataXMP, "XMP"},
	} {
		kind, name := c.kind, c.name
		n := webp.GetMetadataSize(data, kind)
		if n == 0 {
			continue
		}
		fmt.Printf("  %s: %d bytes\n", name, n)
		if kind != webp.MetadataEXIF {
			continue
		}
		buf := make([]byte, n)
		webp.ExtractMetadata(data, buf, kind)
		if o, err := webp.ExifOrientation(buf); err == nil {
			fmt.Printf("  EXIF orientation: %d\n", o)
		}
	}
}

// readMeta pulls the three chunk kinds out of a webp container, if any.
func readMeta(data []byte) *webp.Metadata {
	grab := func(kind webp.MetadataKind) []byte {
		n := webp.GetMetadataSize(data, kind)
		if n == 0 {
			return nil
		}
		buf := make([]byte, n)
		webp.ExtractMetadata(data, buf, kind)
		return buf
	}
	return &webp.Metadata{
		ICCProfile: grab(webp.MetadataColorProfile),
		EXIF:       grab(webp.MetadataEXIF),
		XMP:        grab(webp.MetadataXMP),
	}
}

func main() {
	flag.Parse()
	if *info {
		if flag.NArg() != 1 {
			log.Fatal("usage: webpconv -info file.webp")
		}
		printInfo(flag.Arg(0))
		return
	}
	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: webpconv [flags] input.[webp|png|jpg|gif|bmp|tiff] output.[webp|png|jpg|gif|bmp|tiff]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	ps, ok := presets[*preset]
	if !ok {
		log.Fatalf("unknown preset %q", *preset)
	}
	opt := &webp.Options{
		Quality:         float32(*quality),
		Preset:          ps,
		Method:          *method,
		FilterStrength:  webp.DefaultOptions.FilterStrength,
		FilterType:      webp.DefaultOptions.FilterType,
		FilterSharpness: webp.DefaultOptions.FilterSharpness,
		SNSStrength:     webp.DefaultOptions.SNSStrength,
	}

	encTab := map[string]encFun{
		".png":  png.Encode,
		".bmp":  bmp.Encode,
		".gif":  func(w io.Writer, i image.Image) error { return gif.Encode(w, i, nil) },
		".jpg":  func(w io.Writer, i image.Image) error { return jpeg.Encode(w, i, nil) },
		".tiff": func(w io.Writer, i image.Image) error { return tiff.Encode(w, i, nil) },
		".webp": func(w io.Writer, i image.Image) error { return webp.EncodeImage(w, i, opt) },
	}

	raw, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	img, inFmt, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("decoded %s: %dx%d %s", flag.Arg(0), img.Bounds().Dx(), img.Bounds().Dy(), inFmt)

	outPath := flag.Arg(1)
	ext := filepath.Ext(outPath)
	enc, ok := encTab[ext]
	if !ok {
		log.Fatalf("unknown output format %q", ext)
	}
	var buf bytes.Buffer
	if err := enc(&buf, img); err != nil {
		log.Fatal(err)
	}
	outData := buf.Bytes()

	// webp to webp with -meta: re-inject the source chunks.
	if *keepMeta && inFmt == "webp" && ext == ".webp" {
		outData, err = webp.SetMetadata(outData, readMeta(raw), func(n int) []byte { return make([]byte, n) })
		if err != nil {
			log.Fatal(err)
		}
	}
	if err := os.WriteFile(outPath, outData, 0644); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", outPath)
}
