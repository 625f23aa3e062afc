package ndspy

import (
	"image"
	"unsafe"

	"github.com/gogpu/ndspy/internal/handles"
)

// OpenFunc is called once, before the renderer starts sending pixels to
// a display session. The format describes the per-pixel channel layout
// every later bucket uses.
type OpenFunc func(name string, width, height int, format *PixelFormat) Error

// WriteFunc is called for each bucket of pixels the renderer delivers
// during rendering. It receives only the bucket, never the full image;
// data is row-major with channels interleaved per pixel and holds
// bucket.Dx()*bucket.Dy()*format.Channels() elements. The slice aliases
// renderer memory and is valid only for the duration of the call.
//
// Buckets arrive in renderer-determined order and, on multi-threaded
// renderers, concurrently for non-overlapping rectangles. A WriteFunc
// must be safe under that interleaving.
type WriteFunc[T Scalar] func(name string, width, height int, bucket image.Rectangle, format *PixelFormat, data []T) Error

// FinishFunc is called once when a display session closes. It takes
// ownership of the session's name, dimensions and format. It does not
// receive pixel data; pair it with AccumulatingCallbacks when the full
// frame is needed.
type FinishFunc func(name string, width, height int, format PixelFormat) Error

// CallbackHandle is an opaque, word-sized identifier for a wrapped user
// callback. It is the value placed in the driver's untyped parameter
// slot; the renderer hands it back verbatim and the bridge resolves it
// through a process-wide handle table. No pointer ever crosses the wire.
//
// A handle is minted once and consumed exactly once: sessions consume
// the handles they received when they close. A handle that was minted
// but never given to a session must be freed with Release.
type CallbackHandle uintptr

// Parameter names the bridge reserves for callback handles in the
// renderer-supplied user parameter list.
const (
	ParamOpenCallback   = "callback.open"
	ParamWriteCallback  = "callback.write"
	ParamFinishCallback = "callback.finish"
	ParamQueryCallback  = "callback.query" // reserved, never invoked
)

// openBox wraps an OpenFunc behind the handle table.
type openBox struct {
	fn OpenFunc
}

// finishBox wraps a FinishFunc behind the handle table.
type finishBox struct {
	fn FinishFunc
}

// writeBox erases the element type of a wrapped WriteFunc. The session
// engine calls invokeRaw with the renderer's raw bucket bytes; the
// concrete box reinterprets them as its element type. scalarType lets
// the engine reject a callback whose element type does not match the
// driver variant the session was opened with.
type writeBox interface {
	scalarType() ScalarType
	invokeRaw(name string, width, height int, bucket image.Rectangle, format *PixelFormat, raw []byte) Error

	// wantsEmptyBuckets reports whether the session should ask the
	// renderer to deliver empty buckets too. Direct forwarding wants
	// them; the accumulating variant has nothing to copy from them.
	wantsEmptyBuckets() bool
}

type typedWriteBox[T Scalar] struct {
	fn           WriteFunc[T]
	accumulating bool
}

func (b *typedWriteBox[T]) scalarType() ScalarType { return scalarTypeOf[T]() }

func (b *typedWriteBox[T]) wantsEmptyBuckets() bool { return !b.accumulating }

func (b *typedWriteBox[T]) invokeRaw(name string, width, height int, bucket image.Rectangle, format *PixelFormat, raw []byte) Error {
	var data []T
	if len(raw) > 0 {
		// Zero-copy reinterpretation. The element width is fixed for
		// the whole session by the driver variant, checked at open.
		var elem T
		n := len(raw) / int(unsafe.Sizeof(elem))
		data = unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n)
	}
	return b.fn(name, width, height, bucket, format, data)
}

// NewOpenCallback wraps fn and returns a handle for the driver's
// "callback.open" parameter.
func NewOpenCallback(fn OpenFunc) CallbackHandle {
	return CallbackHandle(handles.New(&openBox{fn: fn}))
}

// NewWriteCallback wraps fn and returns a handle for the driver's
// "callback.write" parameter. The element type T must match the driver
// variant the session is opened with (DriverF32 for float32 and so on);
// a mismatch is rejected at open.
func NewWriteCallback[T Scalar](fn WriteFunc[T]) CallbackHandle {
	return newWriteHandle(&typedWriteBox[T]{fn: fn})
}

func newWriteHandle(b writeBox) CallbackHandle {
	return CallbackHandle(handles.New(b))
}

// NewFinishCallback wraps fn and returns a handle for the driver's
// "callback.finish" parameter.
func NewFinishCallback(fn FinishFunc) CallbackHandle {
	return CallbackHandle(handles.New(&finishBox{fn: fn}))
}

// Release frees a handle that was never passed to a session. Reports
// whether the handle was still live. Releasing a handle a session
// already consumed returns false; releasing a handle a session still
// holds is a caller bug and leaves that session's stage skipped.
func (h CallbackHandle) Release() bool {
	return handles.Delete(handles.Handle(h))
}

// Valid reports whether the handle currently resolves to a callback.
func (h CallbackHandle) Valid() bool {
	_, ok := handles.Get(handles.Handle(h))
	return ok
}
