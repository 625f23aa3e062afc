package ndspy

import (
	"image"
	"testing"
)

func TestCallbackHandleLifecycle(t *testing.T) {
	h := NewOpenCallback(func(string, int, int, *PixelFormat) Error { return ErrNone })
	if h == 0 {
		t.Fatal("minted handle is zero")
	}
	if !h.Valid() {
		t.Fatal("fresh handle does not resolve")
	}
	if !h.Release() {
		t.Fatal("first Release returned false")
	}
	if h.Valid() {
		t.Error("handle still resolves after Release")
	}
	if h.Release() {
		t.Error("second Release returned true")
	}
}

func TestCallbackHandlesAreDistinct(t *testing.T) {
	fn := func(string, int, int, PixelFormat) Error { return ErrNone }
	a := NewFinishCallback(fn)
	b := NewFinishCallback(fn)
	defer a.Release()
	defer b.Release()

	if a == b {
		t.Error("two mints of the same function share a handle")
	}
}

func TestWriteBoxScalarType(t *testing.T) {
	h := NewWriteCallback(func(string, int, int, image.Rectangle, *PixelFormat, []uint16) Error {
		return ErrNone
	})
	defer h.Release()

	wb, ok := resolveWrite(h)
	if !ok {
		t.Fatal("write handle does not resolve")
	}
	if got := wb.scalarType(); got != ScalarU16 {
		t.Errorf("scalarType() = %s, want Unsigned16", got)
	}
	if !wb.wantsEmptyBuckets() {
		t.Error("direct write box declined empty buckets")
	}
}

func TestWriteBoxReinterpretsBytes(t *testing.T) {
	var got []uint32
	h := NewWriteCallback(func(_ string, _, _ int, _ image.Rectangle, _ *PixelFormat, data []uint32) Error {
		got = append([]uint32(nil), data...)
		return ErrNone
	})
	defer h.Release()

	wb, _ := resolveWrite(h)
	raw := []byte{
		0x01, 0x00, 0x00, 0x00,
		0xff, 0xff, 0x00, 0x00,
	}
	format := DecodePixelFormat([]string{"id.s"})
	if code := wb.invokeRaw("out", 2, 1, image.Rect(0, 0, 2, 1), &format, raw); code != ErrNone {
		t.Fatalf("invokeRaw = %s", code)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 0xffff {
		t.Errorf("reinterpreted data = %v, want [1 65535]", got)
	}
}

func TestUserParameterPointer(t *testing.T) {
	tests := []struct {
		name string
		p    UserParameter
		want uintptr
		ok   bool
	}{
		{"pointer", UserParameter{Name: "callback.write", Type: ParamTypePointer, Count: 1, Value: 42}, 42, true},
		{"null pointer", UserParameter{Type: ParamTypePointer, Count: 1, Value: 0}, 0, false},
		{"wrong tag", UserParameter{Type: ParamTypeInteger, Count: 1, Value: 42}, 0, false},
		{"wrong arity", UserParameter{Type: ParamTypePointer, Count: 2, Value: 42}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := tt.p.Pointer()
			if v != tt.want || ok != tt.ok {
				t.Errorf("Pointer() = (%d, %v), want (%d, %v)", v, ok, tt.want, tt.ok)
			}
		})
	}
}
