package ndspy

// Go-side mirrors of the native display-driver structures. The cgo
// layer (package cdspy) converts the C structs to and from these; the
// engine and its tests only ever see the mirrors.

// DevFormat describes one declared scalar channel of the output: its
// name ("Ci.r", "N.x", "depth.s", ...) and its element type. The open
// call rewrites Type on every entry to the session's scalar type, which
// is how the renderer learns what element width to produce.
type DevFormat struct {
	Name string
	Type ScalarType
}

// Parameter value type tags, matching the native user parameter
// encoding. Only the pointer tag is meaningful to the bridge; callback
// handles travel in pointer-typed parameters.
const (
	ParamTypeFloat   byte = 'f'
	ParamTypeInteger byte = 'i'
	ParamTypeString  byte = 's'
	ParamTypePointer byte = 'p'
)

// UserParameter is one entry of the renderer-supplied parameter list
// handed to open: a (name, type tag, arity, value) tuple. For
// pointer-typed parameters Value holds the word that was stored in the
// native void* slot — for the bridge's reserved names, a CallbackHandle.
type UserParameter struct {
	Name  string
	Type  byte
	Count int
	Value uintptr
}

// Pointer returns the parameter's value word. The second result is
// false unless the parameter is a scalar pointer parameter with a
// non-null value.
func (p *UserParameter) Pointer() (uintptr, bool) {
	if p.Type != ParamTypePointer || p.Count != 1 || p.Value == 0 {
		return 0, false
	}
	return p.Value, true
}

// DriverFlags is the flag word the open call returns to the renderer.
type DriverFlags uint32

// Driver flag bits.
const (
	// FlagWantsScanlineOrder asks for buckets in scanline order.
	// The bridge never sets it: bucket order is renderer-determined
	// and the engine is order-independent.
	FlagWantsScanlineOrder DriverFlags = 1 << 0

	// FlagWantsEmptyBuckets asks the renderer to deliver buckets even
	// when they contain no samples. Set for direct bucket forwarding so
	// the write callback sees full coverage; cleared for accumulating
	// sessions, which have nothing to copy from an empty bucket.
	FlagWantsEmptyBuckets DriverFlags = 1 << 1

	// FlagWantsNullEmptyBuckets asks for empty buckets with a null
	// data pointer instead of zeroed data.
	FlagWantsNullEmptyBuckets DriverFlags = 1 << 2
)

// QueryType identifies an out-of-band capability query. Queries are
// answered from static capability flags; they are valid before, during
// and after any session.
type QueryType uint32

// Query kinds.
const (
	// QuerySize asks for a preferred image size. Unsupported.
	QuerySize QueryType = 0

	// QueryOverwrite asks whether an existing output may be
	// overwritten. Answered with 1 (yes).
	QueryOverwrite QueryType = 1

	// QueryRenderProgress asks for a progress callback function
	// pointer. Answered by the C layer; the pure-Go engine reports
	// Unsupported.
	QueryRenderProgress QueryType = 2

	// QueryProgressive asks whether progressive (coarse-to-fine)
	// delivery is acceptable. Answered with 1 (yes).
	QueryProgressive QueryType = 3

	// QueryThread asks whether entry points may be called from
	// multiple renderer threads. Answered with 1 (yes).
	QueryThread QueryType = 4

	// QueryCooked asks whether the driver wants filtered ("cooked")
	// pixel data. Answered with 1 (yes).
	QueryCooked QueryType = 5

	// QueryStop asks whether rendering should stop. Answered with
	// ErrNone: keep rendering. User callbacks request a stop by
	// returning ErrStop from open or write instead.
	QueryStop QueryType = 6
)

// String returns a human-readable name for the query kind.
func (q QueryType) String() string {
	switch q {
	case QuerySize:
		return "Size"
	case QueryOverwrite:
		return "Overwrite"
	case QueryRenderProgress:
		return "RenderProgress"
	case QueryProgressive:
		return "Progressive"
	case QueryThread:
		return "Thread"
	case QueryCooked:
		return "Cooked"
	case QueryStop:
		return "Stop"
	default:
		return unknownStr
	}
}
