package webp

import "strconv"

// Status codes surfaced through Error.Code. Apart from CodeVersionMismatch,
// which is defined by this package, the values are libwebp's own enums
// (WebPEncodingError, VP8StatusCode, WebPMuxError) and are propagated
// untranslated, so hosts that already understand the libwebp code space keep
// working. Note the three enums overlap numerically; the operation that
// returned the error tells them apart.
const (
	CodeVersionMismatch = -1

	// WebPEncodingError, encode path.
	CodeEncOutOfMemory          = 1
	CodeEncBitstreamOutOfMemory = 2
	CodeEncNullParameter        = 3
	CodeEncInvalidConfiguration = 4
	CodeEncBadDimension         = 5
	CodeEncPartition0Overflow   = 6
	CodeEncPartitionOverflow    = 7
	CodeEncBadWrite             = 8
	CodeEncFileTooBig           = 9
	CodeEncUserAbort            = 10

	// VP8StatusCode, decode path.
	CodeDecOutOfMemory        = 1
	CodeDecInvalidParam       = 2
	CodeDecBitstreamError     = 3
	CodeDecUnsupportedFeature = 4
	CodeDecSuspended          = 5
	CodeDecUserAbort          = 6
	CodeDecNotEnoughData      = 7

	// WebPMuxError, metadata path.
	CodeMuxNotFound        = 0
	CodeMuxInvalidArgument = -1
	CodeMuxBadData         = -2
	CodeMuxMemoryError     = -3
	CodeMuxNotEnoughData   = -4
)

const (
	opDecode = "decode"
	opEncode = "encode"
	opMux    = "mux"
)

// Error is a failed status reported by the bridge or by libwebp.
type Error struct {
	Code int
	op   string
	msg  string
}

func (e *Error) Error() string {
	s := "webp: "
	if e.op != "" {
		s += e.op + ": "
	}
	if e.msg != "" {
		return s + e.msg
	}
	return s + "status " + strconv.Itoa(e.Code)
}

// Is matches errors carrying the same code from the same operation, so the
// sentinels below work with errors.Is. The enums overlap numerically, a bare
// code match would conflate them.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && t.op == e.op
}

var (
	// ErrVersionMismatch means the libwebp config structures could not be
	// initialized, i.e. the headers this package was built against do not
	// match the linked library.
	ErrVersionMismatch = &Error{Code: CodeVersionMismatch, msg: "library version mismatch"}

	// ErrNullParameter is returned by Encode when no allocator is supplied.
	ErrNullParameter = &Error{Code: CodeEncNullParameter, op: opEncode, msg: "null parameter"}

	// ErrOutOfMemory covers both encoder allocation failures and a nil
	// result from the caller's Allocator.
	ErrOutOfMemory = &Error{Code: CodeEncOutOfMemory, op: opEncode, msg: "out of memory"}
)

func decodeError(code int) error {
	if code == 0 {
		return nil
	}
	return &Error{Code: code, op: opDecode}
}

func encodeError(code int) error {
	if code == 0 {
		return nil
	}
	switch code {
	case CodeEncOutOfMemory:
		return ErrOutOfMemory
	case CodeEncNullParameter:
		return ErrNullParameter
	}
	return &Error{Code: code, op: opEncode}
}

func muxError(code int) error {
	return &Error{Code: code, op: opMux}
}
