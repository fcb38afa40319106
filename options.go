package webp

// Preset selects a bundle of encoder defaults tuned for a content type.
// Values match libwebp's WebPPreset.
type Preset int

const (
	PresetDefault Preset = iota
	PresetPicture        // indoor shot, portrait
	PresetPhoto          // outdoor photograph
	PresetDrawing        // line drawing, high-contrast details
	PresetIcon           // small colorful image
	PresetText
)

type Options struct {
	Quality         float32 // 0-100, 100 switches to lossless mode
	Preset          Preset
	Method          int // encoder effort, 0 (fast) - 6 (smaller)
	TargetSize      int // desired output size in bytes, 0 = off
	FilterStrength  int // deblocking 0-100; not applied for icon/text presets
	FilterType      int // 0 = simple, 1 = strong
	FilterSharpness int // 0 (sharpest) - 7
	SNSStrength     int // spatial noise shaping 0-100
}

// Encoding defaults, used when Encode is handed a nil Options.
var DefaultOptions = Options{
	Quality:        75,
	Method:         4,
	FilterStrength: 60,
	FilterType:     1,
	SNSStrength:    50,
}

// Allocator returns a buffer of at least size bytes for an operation's
// output, or nil to signal allocation failure. Ownership of the buffer
// passes to the caller as soon as the operation returns; the bridge keeps no
// reference to it.
type Allocator func(size int) []byte

// ProgressFunc observes encode progress as a 0-100 percentage. It is called
// synchronously on the encoding goroutine, zero or more times, and cannot
// cancel the encode.
type ProgressFunc func(percent int)
