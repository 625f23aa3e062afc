// Package ndspy bridges a renderer's display-driver protocol to Go
// callbacks.
//
// # Overview
//
// Renderers deliver pixels through a fixed C plugin protocol: the
// renderer opens an image, pushes rectangular buckets of samples from
// its worker threads, and closes the image when the frame is done. This
// package lets that protocol terminate in plain Go closures. It decodes
// the renderer's self-describing channel layout into layer descriptors,
// moves callback ownership across the foreign boundary through a handle
// table (no pointers on the wire), and dispatches buckets either
// directly (zero copy) or accumulated into one full frame.
//
// # Quick Start
//
//	import "github.com/gogpu/ndspy"
//
//	// Receive the finished frame in one piece.
//	write, finish := ndspy.AccumulatingCallbacks[float32](
//		func(name string, w, h int, format ndspy.PixelFormat, pixels []float32) ndspy.Error {
//			fb := ndspy.NewFramebuffer(name, w, h, format, pixels)
//			_ = fb.SavePNG("render.png", 0)
//			return ndspy.ErrNone
//		},
//	)
//
//	// Hand the two handles to the renderer as the output driver's
//	// "callback.write" and "callback.finish" parameters, with
//	// ndspy.DriverF32 as the driver name.
//	_, _ = write, finish
//
// # Driver variants
//
// One driver name exists per pixel element type (DriverF32, DriverU16,
// ...). The renderer's choice of driver fixes the element width for the
// whole session; a write callback typed for a different element type is
// rejected when the session opens.
//
// # Architecture
//
// The package is organized into:
//   - Root: pixel format decoder, callback handles, session engine
//   - cdspy: the C ABI layer exporting the DspyImage* entry points
//   - integration/gputex: WebGPU texture formats for decoded layers
//   - internal/handles: the word-sized handle table
//
// The root package is pure Go; only cdspy needs cgo.
//
// # Concurrency
//
// All entry points are synchronous and are called on the renderer's own
// threads. Bucket order is renderer-determined; writes for
// non-overlapping rectangles may run concurrently and take no lock in
// the bridge.
package ndspy

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
