// Package cdspy exports the display-driver C entry points.
//
// Build this package into a shared library (go build -buildmode=c-shared)
// and point the renderer at it as an output driver. The renderer
// resolves DspyImageOpen, DspyImageData, DspyImageClose and
// DspyImageQuery by symbol name and calls them on its own threads; each
// is a thin trampoline that converts the C structures to the Go wire
// mirrors and hands off to the session engine in the root package.
//
// Nothing here holds state: image handles and callback handles are
// table keys issued by the root package, stored by the renderer in its
// void* slots and converted back on every call.
package cdspy

/*
#include "ndspy.h"
*/
import "C"

import (
	"image"
	"unicode/utf8"
	"unsafe"

	"github.com/gogpu/ndspy"
)

// goString converts a C string that crossed the trust boundary.
// Renderer strings are trusted but verified: nil or malformed UTF-8
// becomes the decoder's sentinel name instead of aborting.
func goString(s *C.char) string {
	if s == nil {
		return ndspy.InvalidName
	}
	g := C.GoString(s)
	if !utf8.ValidString(g) {
		return ndspy.InvalidName
	}
	return g
}

//export DspyImageOpen
func DspyImageOpen(imageHandle *C.PtDspyImageHandle, drivername, filename *C.char, width, height C.int, paramCount C.int, parameters *C.UserParameter, formatCount C.int, format *C.PtDspyDevFormat, flagstuff *C.PtFlagStuff) (code C.PtDspyError) {
	defer func() {
		if recover() != nil {
			code = C.PkDspyErrorUndefined
		}
	}()

	if imageHandle == nil || filename == nil || format == nil || formatCount <= 0 ||
		(paramCount > 0 && parameters == nil) || flagstuff == nil {
		return C.PkDspyErrorBadParams
	}

	var params []ndspy.UserParameter
	if paramCount > 0 {
		cparams := unsafe.Slice(parameters, int(paramCount))
		params = make([]ndspy.UserParameter, len(cparams))
		for i := range cparams {
			params[i] = ndspy.UserParameter{
				Name:  goString(cparams[i].name),
				Type:  byte(cparams[i].valueType),
				Count: int(cparams[i].valueCount),
				Value: uintptr(cparams[i].value),
			}
		}
	}

	cformats := unsafe.Slice(format, int(formatCount))
	formats := make([]ndspy.DevFormat, len(cformats))
	for i := range cformats {
		formats[i] = ndspy.DevFormat{
			Name: goString(cformats[i].name),
			Type: ndspy.ScalarType(cformats[i]._type),
		}
	}

	h, flags, err := ndspy.Open(
		goString(drivername),
		goString(filename),
		int(width), int(height),
		params, formats,
		ndspy.DriverFlags(flagstuff.flags),
	)
	if h == 0 {
		return C.PtDspyError(err)
	}

	// Tell the renderer the element type every channel will use.
	for i := range cformats {
		cformats[i]._type = C.uint(formats[i].Type)
	}
	flagstuff.flags = C.int(flags)

	// The handle is a table key, not a pointer; it only travels through
	// the void* slot.
	*imageHandle = C.PtDspyImageHandle(unsafe.Pointer(uintptr(h)))

	return C.PtDspyError(err)
}

//export DspyImageData
func DspyImageData(imageHandle C.PtDspyImageHandle, xmin, xmaxPlusOne, ymin, ymaxPlusOne, entrySize C.int, data *C.uchar) (code C.PtDspyError) {
	defer func() {
		if recover() != nil {
			code = C.PkDspyErrorUndefined
		}
	}()

	if imageHandle == nil {
		return C.PkDspyErrorBadParams
	}

	bucket := image.Rect(int(xmin), int(ymin), int(xmaxPlusOne), int(ymaxPlusOne))

	var raw []byte
	if data != nil {
		n := int(xmaxPlusOne-xmin) * int(ymaxPlusOne-ymin) * int(entrySize)
		if n < 0 {
			return C.PkDspyErrorBadParams
		}
		raw = unsafe.Slice((*byte)(unsafe.Pointer(data)), n)
	}

	err := ndspy.Write(ndspy.ImageHandle(uintptr(imageHandle)), bucket, raw)
	return C.PtDspyError(err)
}

//export DspyImageClose
func DspyImageClose(imageHandle C.PtDspyImageHandle) (code C.PtDspyError) {
	defer func() {
		if recover() != nil {
			code = C.PkDspyErrorUndefined
		}
	}()

	if imageHandle == nil {
		return C.PkDspyErrorBadParams
	}
	err := ndspy.Close(ndspy.ImageHandle(uintptr(imageHandle)))
	return C.PtDspyError(err)
}

//export DspyImageQuery
func DspyImageQuery(imageHandle C.PtDspyImageHandle, queryType C.PtDspyQueryType, size C.int, data unsafe.Pointer) (code C.PtDspyError) {
	defer func() {
		if recover() != nil {
			code = C.PkDspyErrorUndefined
		}
	}()

	switch queryType {
	case C.PkRenderProgressQuery:
		// Answered here rather than in the engine: the answer is a C
		// function pointer.
		if data == nil || uintptr(size) < unsafe.Sizeof(C.PtDspyRenderProgressFuncPtr(nil)) {
			return C.PkDspyErrorBadParams
		}
		*(*C.PtDspyRenderProgressFuncPtr)(data) = renderProgressFunc()
		return C.PkDspyErrorNone

	case C.PkProgressiveQuery:
		if data == nil || uintptr(size) < unsafe.Sizeof(C.PtDspyProgressiveInfo{}) {
			return C.PkDspyErrorBadParams
		}
		(*C.PtDspyProgressiveInfo)(data).acceptProgressive = 1
		return C.PkDspyErrorNone

	case C.PkThreadQuery:
		if data == nil || uintptr(size) < unsafe.Sizeof(C.PtDspyThreadInfo{}) {
			return C.PkDspyErrorBadParams
		}
		(*C.PtDspyThreadInfo)(data).multithread = 1
		return C.PkDspyErrorNone

	case C.PkCookedQuery:
		if data == nil || uintptr(size) < unsafe.Sizeof(C.PtDspyCookedInfo{}) {
			return C.PkDspyErrorBadParams
		}
		(*C.PtDspyCookedInfo)(data).cooked = 1
		return C.PkDspyErrorNone

	case C.PkOverwriteQuery:
		if data == nil || uintptr(size) < unsafe.Sizeof(C.PtDspyOverwriteInfo{}) {
			return C.PkDspyErrorBadParams
		}
		(*C.PtDspyOverwriteInfo)(data).overwrite = 1
		return C.PkDspyErrorNone

	case C.PkStopQuery:
		// Keep rendering.
		return C.PkDspyErrorNone

	default:
		return C.PkDspyErrorUnsupported
	}
}
