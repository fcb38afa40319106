//go:build cgo

package webp

/*
#include <stdint.h>
*/
import "C"

import "runtime/cgo"

//export goWebPProgress
func goWebPProgress(percent C.int, handle C.uintptr_t) C.int {
	if fn, ok := cgo.Handle(handle).Value().(ProgressFunc); ok && fn != nil {
		fn(int(percent))
	}
	// There is no cancellation path, the encoder always continues.
	return 1
}
