package ndspy

import (
	"image"
	"sync"
)

// accumState is the buffer shared by an accumulating write/finish pair.
// Only the lazy allocation transition is serialized; bucket rows land in
// disjoint ranges of an already-allocated buffer and need no lock.
type accumState[T Scalar] struct {
	mu       sync.Mutex
	buf      []T
	channels int
}

// AccumulatingCallbacks returns a write/finish handle pair that buffers
// every bucket into one full frame and hands the complete image to
// finish when the session closes. It is a convenience built entirely on
// the per-bucket write contract: zero-copy bucket delivery stays the
// primitive, full-image delivery is derived from it.
//
// The resulting frame is byte-identical no matter how the renderer
// tiled the image or in which order (or from how many threads) the
// buckets arrived.
//
// The pair is for a single session; both handles are consumed when that
// session closes.
func AccumulatingCallbacks[T Scalar](finish func(name string, width, height int, format PixelFormat, pixels []T) Error) (write, fin CallbackHandle) {
	st := &accumState[T]{}

	onWrite := func(name string, width, height int, bucket image.Rectangle, format *PixelFormat, data []T) Error {
		st.mu.Lock()
		if st.buf == nil {
			st.channels = format.Channels()
			st.buf = make([]T, width*height*st.channels)
		}
		buf, channels := st.buf, st.channels
		st.mu.Unlock()

		rowLen := bucket.Dx() * channels
		for y := bucket.Min.Y; y < bucket.Max.Y; y++ {
			src := (y - bucket.Min.Y) * rowLen
			dst := (y*width + bucket.Min.X) * channels
			copy(buf[dst:dst+rowLen], data[src:src+rowLen])
		}
		return ErrNone
	}

	onFinish := func(name string, width, height int, format PixelFormat) Error {
		st.mu.Lock()
		buf := st.buf
		st.buf = nil
		st.mu.Unlock()

		if buf == nil {
			// No bucket ever arrived; deliver an empty frame of the
			// right size so the combining closure sees one call either
			// way.
			buf = make([]T, width*height*format.Channels())
		}
		return finish(name, width, height, format, buf)
	}

	// The accumulating marker makes open clear FlagWantsEmptyBuckets
	// for the session: there is nothing to copy from an empty bucket.
	wh := newWriteHandle(&typedWriteBox[T]{fn: onWrite, accumulating: true})
	fh := NewFinishCallback(onFinish)
	return wh, fh
}
