package ndspy

import (
	"image"
	"testing"
)

func BenchmarkDecodePixelFormat(b *testing.B) {
	channels := []string{
		"Ci.r", "Ci.g", "Ci.b", "a",
		"N.x", "N.y", "N.z",
		"albedo.r", "albedo.g", "albedo.b",
		"depth.s", "id.s",
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		DecodePixelFormat(channels)
	}
}

// The direct write path must stay allocation-free per bucket: the raw
// bytes are reinterpreted in place.
func BenchmarkWriteBucket(b *testing.B) {
	write := NewWriteCallback(func(string, int, int, image.Rectangle, *PixelFormat, []float32) Error {
		return ErrNone
	})
	params := []UserParameter{pointerParam(ParamWriteCallback, write)}

	h, _, code := Open(DriverF32, "bench", 1024, 1024, params, rgbaFormats(), 0)
	if code != ErrNone {
		b.Fatalf("Open = %s", code)
	}
	defer Close(h)

	bucket := image.Rect(0, 0, 32, 32)
	data := make([]byte, 32*32*4*4)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if code := Write(h, bucket, data); code != ErrNone {
			b.Fatalf("Write = %s", code)
		}
	}
}

func BenchmarkAccumulateFrame(b *testing.B) {
	const width, height, tile = 256, 256, 32

	data := make([]byte, tile*tile*4*4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		write, finish := AccumulatingCallbacks[float32](
			func(string, int, int, PixelFormat, []float32) Error { return ErrNone },
		)
		params := []UserParameter{
			pointerParam(ParamWriteCallback, write),
			pointerParam(ParamFinishCallback, finish),
		}
		h, _, code := Open(DriverF32, "bench", width, height, params, rgbaFormats(), 0)
		if code != ErrNone {
			b.Fatalf("Open = %s", code)
		}
		for y := 0; y < height; y += tile {
			for x := 0; x < width; x += tile {
				if code := Write(h, image.Rect(x, y, x+tile, y+tile), data); code != ErrNone {
					b.Fatalf("Write = %s", code)
				}
			}
		}
		if code := Close(h); code != ErrNone {
			b.Fatalf("Close = %s", code)
		}
	}
}
