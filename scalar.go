package ndspy

// Scalar is the set of pixel element types a display session can carry.
//
// The set is closed: it mirrors the scalar formats of the display-driver
// wire protocol one to one. Each type has its own driver name (see
// DriverF32 and friends), so the renderer knows the element width and
// signedness of a session from the moment it selects the driver, and the
// bridge never branches on type while interpreting raw bucket bytes.
type Scalar interface {
	float32 | uint32 | int32 | uint16 | int16 | uint8 | int8
}

// ScalarType is the wire constant for a pixel element type.
//
// Values are the native protocol's format constants (PkDspyFloat32 etc.).
type ScalarType uint32

// Scalar format wire constants.
const (
	// ScalarNone is the zero value; it never appears in an open session.
	ScalarNone ScalarType = 0

	// ScalarF32 is 32-bit IEEE 754 floating point.
	ScalarF32 ScalarType = 1

	// ScalarU32 is a 32-bit unsigned integer.
	ScalarU32 ScalarType = 2

	// ScalarI32 is a 32-bit signed integer.
	ScalarI32 ScalarType = 3

	// ScalarU16 is a 16-bit unsigned integer.
	ScalarU16 ScalarType = 4

	// ScalarI16 is a 16-bit signed integer.
	ScalarI16 ScalarType = 5

	// ScalarU8 is an 8-bit unsigned integer.
	ScalarU8 ScalarType = 6

	// ScalarI8 is an 8-bit signed integer.
	ScalarI8 ScalarType = 7

	// ScalarF16 is 16-bit floating point. Reserved: the protocol defines
	// it but no driver variant is registered for it, since Go has no
	// native half-float element type.
	ScalarF16 ScalarType = 12
)

// Driver names, one per scalar type. The renderer selects the element
// type of a session by naming one of these as the output driver.
const (
	// DriverF32 streams 32-bit float pixels.
	DriverF32 = "gopher_f32"
	// DriverU32 streams 32-bit unsigned integer pixels.
	DriverU32 = "gopher_u32"
	// DriverI32 streams 32-bit signed integer pixels.
	DriverI32 = "gopher_i32"
	// DriverU16 streams 16-bit unsigned integer pixels.
	DriverU16 = "gopher_u16"
	// DriverI16 streams 16-bit signed integer pixels.
	DriverI16 = "gopher_i16"
	// DriverU8 streams 8-bit unsigned integer pixels.
	DriverU8 = "gopher_u8"
	// DriverI8 streams 8-bit signed integer pixels.
	DriverI8 = "gopher_i8"
)

// String returns the protocol name of the scalar type.
func (t ScalarType) String() string {
	switch t {
	case ScalarNone:
		return "None"
	case ScalarF32:
		return "Float32"
	case ScalarU32:
		return "Unsigned32"
	case ScalarI32:
		return "Signed32"
	case ScalarU16:
		return "Unsigned16"
	case ScalarI16:
		return "Signed16"
	case ScalarU8:
		return "Unsigned8"
	case ScalarI8:
		return "Signed8"
	case ScalarF16:
		return "Float16"
	default:
		return unknownStr
	}
}

// Size returns the width of one element of this scalar type in bytes.
// Returns 0 for ScalarNone and unknown values.
func (t ScalarType) Size() int {
	switch t {
	case ScalarF32, ScalarU32, ScalarI32:
		return 4
	case ScalarU16, ScalarI16, ScalarF16:
		return 2
	case ScalarU8, ScalarI8:
		return 1
	default:
		return 0
	}
}

// Valid reports whether t is a scalar type a driver variant exists for.
func (t ScalarType) Valid() bool {
	switch t {
	case ScalarF32, ScalarU32, ScalarI32, ScalarU16, ScalarI16, ScalarU8, ScalarI8:
		return true
	default:
		return false
	}
}

// scalarTypeOf maps a Go element type to its wire constant at compile
// time. Each instantiation collapses to a constant.
func scalarTypeOf[T Scalar]() ScalarType {
	var v T
	switch any(v).(type) {
	case float32:
		return ScalarF32
	case uint32:
		return ScalarU32
	case int32:
		return ScalarI32
	case uint16:
		return ScalarU16
	case int16:
		return ScalarI16
	case uint8:
		return ScalarU8
	case int8:
		return ScalarI8
	default:
		// Unreachable: the Scalar constraint lists exact types only.
		return ScalarNone
	}
}
