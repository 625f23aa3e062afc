package ndspy

import (
	"context"
	"encoding/binary"
	"image"
	"log/slog"

	"github.com/gogpu/ndspy/internal/handles"
)

// ImageHandle identifies an open display session. It is the word the
// open entry point stores in the renderer's image handle slot and that
// every later write/close call hands back. Like CallbackHandle it is a
// table key, never a pointer.
type ImageHandle uintptr

// session is the per-open-call state: one session per image output,
// alive from open to close. The pixel format is decided exactly once,
// at open, and never changes. Sessions are only mutated by calls that
// present their own handle; concurrent writes do not touch session
// state, so the write path takes no lock.
type session struct {
	name   string
	width  int
	height int
	scalar ScalarType
	format PixelFormat

	// Callback handles extracted from the open parameters. Borrowed on
	// every call, consumed exactly once at close. Zero means the stage
	// was not supplied and is skipped.
	open   CallbackHandle
	write  CallbackHandle
	finish CallbackHandle
	query  CallbackHandle // reserved
}

// lookupCallback scans the user parameter list for a reserved callback
// name. Absent names, wrong type tags, wrong arity and null values all
// mean "callback not supplied", which is not an error.
func lookupCallback(params []UserParameter, name string) CallbackHandle {
	for i := range params {
		if params[i].Name != name {
			continue
		}
		if v, ok := params[i].Pointer(); ok {
			return CallbackHandle(v)
		}
		return 0
	}
	return 0
}

// resolveWrite borrows the write box behind a callback handle.
func resolveWrite(h CallbackHandle) (writeBox, bool) {
	v, ok := handles.Get(handles.Handle(h))
	if !ok {
		return nil, false
	}
	wb, ok := v.(writeBox)
	return wb, ok
}

// Open begins a display session. Called once per image output, before
// any bucket is delivered.
//
// The driver name selects the session's scalar type from the registry;
// every entry of formats has its Type rewritten to that scalar type, so
// the renderer produces exactly the element width the session expects.
// The channel names in formats are decoded into the session's
// PixelFormat once, here. Callback handles are extracted from params by
// their reserved names; if an open callback is present it is invoked
// (borrowed) and its code is returned alongside the fresh session
// handle.
//
// flags is the renderer-proposed flag word; the returned word preserves
// it except for FlagWantsEmptyBuckets, which is set for direct bucket
// forwarding and cleared for accumulating write callbacks.
func Open(driverName, outputName string, width, height int, params []UserParameter, formats []DevFormat, flags DriverFlags) (h ImageHandle, outFlags DriverFlags, code Error) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("ndspy: panic in open", slog.Any("panic", r))
			h, outFlags, code = 0, flags, ErrUndefined
		}
	}()

	scalar, ok := DriverScalarType(driverName)
	if !ok {
		return 0, flags, ErrBadParams
	}
	if outputName == "" || width <= 0 || height <= 0 || len(formats) == 0 {
		return 0, flags, ErrBadParams
	}

	// The session's scalar type is fixed here for its whole life.
	for i := range formats {
		formats[i].Type = scalar
	}

	names := make([]string, len(formats))
	for i := range formats {
		names[i] = formats[i].Name
	}

	s := &session{
		name:   outputName,
		width:  width,
		height: height,
		scalar: scalar,
		format: DecodePixelFormat(names),

		open:   lookupCallback(params, ParamOpenCallback),
		write:  lookupCallback(params, ParamWriteCallback),
		finish: lookupCallback(params, ParamFinishCallback),
		query:  lookupCallback(params, ParamQueryCallback),
	}

	flags &^= FlagWantsEmptyBuckets
	if s.write != 0 {
		wb, ok := resolveWrite(s.write)
		if !ok || wb.scalarType() != scalar {
			// A write callback typed for a different driver variant
			// must never be silently reinterpreted.
			return 0, flags, ErrBadParams
		}
		if wb.wantsEmptyBuckets() {
			flags |= FlagWantsEmptyBuckets
		}
	}

	code = ErrNone
	if s.open != 0 {
		if v, ok := handles.Get(handles.Handle(s.open)); ok {
			if ob, ok := v.(*openBox); ok {
				code = ob.fn(s.name, s.width, s.height, &s.format)
			}
		}
	}

	h = ImageHandle(handles.New(s))

	log := Logger()
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("ndspy: session opened",
			slog.String("driver", driverName),
			slog.String("output", outputName),
			slog.Int("width", width),
			slog.Int("height", height),
			slog.String("scalar", scalar.String()),
			slog.Int("channels", s.format.Channels()),
		)
	}

	return h, flags, code
}

// Write delivers one bucket of pixels to a session. data is the raw
// bucket bytes; the session's scalar type decides how they are
// reinterpreted (zero copy). Buckets may arrive in any order and
// concurrently for non-overlapping rectangles; Write takes no lock.
//
// A nil data pointer means an empty bucket and is not an error. The
// write callback's code is forwarded verbatim; without a write callback
// the bucket is dropped with ErrNone.
func Write(h ImageHandle, bucket image.Rectangle, data []byte) (code Error) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("ndspy: panic in write", slog.Any("panic", r))
			code = ErrUndefined
		}
	}()

	v, ok := handles.Get(handles.Handle(h))
	if !ok {
		return ErrBadParams
	}
	s, ok := v.(*session)
	if !ok {
		return ErrBadParams
	}
	if s.write == 0 {
		return ErrNone
	}
	if data == nil {
		return ErrNone
	}

	bw, bh := bucket.Dx(), bucket.Dy()
	if bw < 0 || bh < 0 || bucket.Min.X < 0 || bucket.Min.Y < 0 {
		return ErrBadParams
	}
	need := bw * bh * s.format.Channels() * s.scalar.Size()
	if len(data) < need {
		return ErrBadParams
	}

	wb, ok := resolveWrite(s.write)
	if !ok {
		return ErrBadParams
	}
	return wb.invokeRaw(s.name, s.width, s.height, bucket, &s.format, data[:need])
}

// Close ends a session. This is the one point where the session's
// callback handles are genuinely consumed rather than borrowed: each is
// removed from the handle table exactly once, and the finish callback
// (if any) receives ownership of the session's name, dimensions and
// format. A second close with the same handle returns ErrBadParams.
func Close(h ImageHandle) (code Error) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("ndspy: panic in close", slog.Any("panic", r))
			code = ErrUndefined
		}
	}()

	v, ok := handles.Take(handles.Handle(h))
	if !ok {
		return ErrBadParams
	}
	s, ok := v.(*session)
	if !ok {
		return ErrBadParams
	}

	// Consume the callback handles before invoking user code, so a
	// panicking finish callback cannot cause a second consumption.
	var fb *finishBox
	if s.finish != 0 {
		if v, ok := handles.Take(handles.Handle(s.finish)); ok {
			fb, _ = v.(*finishBox)
		}
	}
	for _, ch := range [...]CallbackHandle{s.open, s.write, s.query} {
		if ch != 0 {
			handles.Delete(handles.Handle(ch))
		}
	}

	code = ErrNone
	if fb != nil {
		code = fb.fn(s.name, s.width, s.height, s.format)
	}

	Logger().Debug("ndspy: session closed",
		slog.String("output", s.name),
		slog.String("code", code.String()),
	)
	return code
}

// Query answers an out-of-band capability question. Answers come from
// static capability flags, never from user callbacks, and are valid
// before, during and after any session; h may be zero.
//
// Info answers are written into data (little endian) after a length
// check; a nil or short buffer is ErrBadParams. Unknown kinds are
// ErrUnsupported.
func Query(h ImageHandle, kind QueryType, data []byte) (code Error) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("ndspy: panic in query", slog.Any("panic", r))
			code = ErrUndefined
		}
	}()

	putFlag := func(v uint32) Error {
		if len(data) < 4 {
			return ErrBadParams
		}
		binary.LittleEndian.PutUint32(data, v)
		return ErrNone
	}

	switch kind {
	case QueryProgressive:
		// Progressive (coarse-to-fine) delivery is fine.
		return putFlag(1)
	case QueryThread:
		// Entry points are safe from multiple renderer threads.
		return putFlag(1)
	case QueryCooked:
		// Filtered pixel data, please.
		return putFlag(1)
	case QueryOverwrite:
		if len(data) < 1 {
			return ErrBadParams
		}
		data[0] = 1
		return ErrNone
	case QueryStop:
		// Keep rendering. Callbacks request a stop via ErrStop.
		return ErrNone
	default:
		// QuerySize, QueryRenderProgress (answered by the C layer) and
		// anything newer.
		return ErrUnsupported
	}
}
