package ndspy

// Error is the status code every display-driver entry point and user
// callback returns to the renderer.
//
// The numeric values are the wire values of the native display-driver
// protocol (PkDspyErrorNone and friends), so the C layer converts by a
// plain cast. The set is closed; there is no wrapping or cause chain —
// a code crosses the ABI as-is.
type Error uint32

// Display-driver status codes.
const (
	// ErrNone means success; the renderer continues.
	ErrNone Error = 0

	// ErrNoMemory signals an allocation failure.
	ErrNoMemory Error = 1

	// ErrUnsupported signals a query or request kind the driver does not
	// implement.
	ErrUnsupported Error = 2

	// ErrBadParams signals malformed or missing required input: null
	// pointers, zero dimensions, a stale image handle, mismatched
	// parameter arity.
	ErrBadParams Error = 3

	// ErrNoResource signals that an external resource could not be
	// obtained.
	ErrNoResource Error = 4

	// ErrUndefined is the catch-all failure, including any panic
	// recovered from user callback code.
	ErrUndefined Error = 5

	// ErrStop asks the renderer to abort the render. Advisory: the
	// bridge only forwards it, it never interrupts an in-flight call.
	ErrStop Error = 6
)

// String returns a human-readable name for the status code.
func (e Error) String() string {
	switch e {
	case ErrNone:
		return "None"
	case ErrNoMemory:
		return "NoMemory"
	case ErrUnsupported:
		return "Unsupported"
	case ErrBadParams:
		return "BadParams"
	case ErrNoResource:
		return "NoResource"
	case ErrUndefined:
		return "Undefined"
	case ErrStop:
		return "Stop"
	default:
		return unknownStr
	}
}

const unknownStr = "Unknown"
