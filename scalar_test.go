package ndspy

import "testing"

func TestScalarTypeSize(t *testing.T) {
	tests := []struct {
		t    ScalarType
		size int
	}{
		{ScalarF32, 4},
		{ScalarU32, 4},
		{ScalarI32, 4},
		{ScalarU16, 2},
		{ScalarI16, 2},
		{ScalarU8, 1},
		{ScalarI8, 1},
		{ScalarF16, 2},
		{ScalarNone, 0},
		{ScalarType(99), 0},
	}

	for _, tt := range tests {
		if got := tt.t.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.t, got, tt.size)
		}
	}
}

func TestScalarTypeValid(t *testing.T) {
	for _, st := range []ScalarType{ScalarF32, ScalarU32, ScalarI32, ScalarU16, ScalarI16, ScalarU8, ScalarI8} {
		if !st.Valid() {
			t.Errorf("%s.Valid() = false", st)
		}
	}
	// No driver variant exists for half floats.
	for _, st := range []ScalarType{ScalarNone, ScalarF16, ScalarType(42)} {
		if st.Valid() {
			t.Errorf("%s.Valid() = true", st)
		}
	}
}

func TestScalarTypeOf(t *testing.T) {
	if got := scalarTypeOf[float32](); got != ScalarF32 {
		t.Errorf("scalarTypeOf[float32]() = %s", got)
	}
	if got := scalarTypeOf[uint16](); got != ScalarU16 {
		t.Errorf("scalarTypeOf[uint16]() = %s", got)
	}
	if got := scalarTypeOf[int8](); got != ScalarI8 {
		t.Errorf("scalarTypeOf[int8]() = %s", got)
	}
}

func TestErrorString(t *testing.T) {
	tests := []struct {
		e    Error
		want string
	}{
		{ErrNone, "None"},
		{ErrNoMemory, "NoMemory"},
		{ErrUnsupported, "Unsupported"},
		{ErrBadParams, "BadParams"},
		{ErrNoResource, "NoResource"},
		{ErrUndefined, "Undefined"},
		{ErrStop, "Stop"},
		{Error(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("Error(%d).String() = %q, want %q", uint32(tt.e), got, tt.want)
		}
	}
}
