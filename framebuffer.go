package ndspy

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/chewxy/math32"
	"golang.org/x/image/tiff"
)

// Framebuffer errors.
var (
	// ErrNoSuchLayer is returned when a layer index is out of range.
	ErrNoSuchLayer = errors.New("ndspy: no such layer")

	// ErrShortFrame is returned when the pixel data is smaller than
	// width*height*channels elements.
	ErrShortFrame = errors.New("ndspy: pixel data shorter than frame")
)

// Framebuffer is a complete accumulated frame: the flat scalar buffer a
// finish callback receives from AccumulatingCallbacks, together with
// the format needed to interpret it. It converts individual layers to
// standard images for saving or display.
//
// Pixel data is scene-referred and linear unless the renderer was asked
// to quantize or apply a color profile; Image applies a display sRGB
// curve to float data for that reason.
type Framebuffer[T Scalar] struct {
	name   string
	width  int
	height int
	format PixelFormat
	data   []T
}

// NewFramebuffer wraps a finished frame. The arguments are exactly what
// an accumulating finish closure receives.
func NewFramebuffer[T Scalar](name string, width, height int, format PixelFormat, data []T) *Framebuffer[T] {
	return &Framebuffer[T]{
		name:   name,
		width:  width,
		height: height,
		format: format,
		data:   data,
	}
}

// Name returns the output name of the frame.
func (f *Framebuffer[T]) Name() string { return f.name }

// Width returns the width of the frame in pixels.
func (f *Framebuffer[T]) Width() int { return f.width }

// Height returns the height of the frame in pixels.
func (f *Framebuffer[T]) Height() int { return f.height }

// Format returns the decoded per-pixel layout of the frame.
func (f *Framebuffer[T]) Format() *PixelFormat { return &f.format }

// Data returns the raw scalar data, row-major with all layers'
// channels interleaved per pixel.
func (f *Framebuffer[T]) Data() []T { return f.data }

// normalized maps one scalar element to [0,1]. Integer data was already
// quantized by the renderer and only needs rescaling; float data is
// clamped.
func normalized[T Scalar](v T) float32 {
	switch v := any(v).(type) {
	case float32:
		return clamp01(v)
	case uint8:
		return float32(v) / 255
	case uint16:
		return float32(v) / 65535
	case uint32:
		return float32(float64(v) / 4294967295)
	case int8:
		return clamp01(float32(v) / 127)
	case int16:
		return clamp01(float32(v) / 32767)
	case int32:
		return clamp01(float32(float64(v) / 2147483647))
	default:
		return 0
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// srgbEncode applies the display sRGB transfer curve to a linear value.
func srgbEncode(l float32) float32 {
	if l <= 0.0031308 {
		return 12.92 * l
	}
	return 1.055*math32.Pow(l, 1/2.4) - 0.055
}

// isFloat reports whether the frame carries float data (the only case
// where Image applies the sRGB curve).
func (f *Framebuffer[T]) isFloat() bool {
	var v T
	_, ok := any(v).(float32)
	return ok
}

// Image converts one layer to an 8-bit NRGBA image.
//
// Channel mapping by layer depth: a single channel is replicated to
// gray, rgb/xyz triplets fill the color channels, and the trailing
// alpha (when the depth has one) fills A; layers without alpha come out
// opaque. Float data is sRGB-encoded (alpha stays linear); integer
// data is rescaled only.
func (f *Framebuffer[T]) Image(layer int) (*image.NRGBA, error) {
	if layer < 0 || layer >= f.format.Len() {
		return nil, fmt.Errorf("%w: %d of %d", ErrNoSuchLayer, layer, f.format.Len())
	}
	channels := f.format.Channels()
	if len(f.data) < f.width*f.height*channels {
		return nil, ErrShortFrame
	}

	l := f.format.Layer(layer)
	srgb := f.isFloat()

	img := image.NewNRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			base := (y*f.width+x)*channels + l.Offset()
			r, g, b, a := layerRGBA(f.data, base, l.Depth())
			if srgb {
				r, g, b = srgbEncode(r), srgbEncode(g), srgbEncode(b)
			}
			i := img.PixOffset(x, y)
			img.Pix[i+0] = uint8(r*255 + 0.5)
			img.Pix[i+1] = uint8(g*255 + 0.5)
			img.Pix[i+2] = uint8(b*255 + 0.5)
			img.Pix[i+3] = uint8(a*255 + 0.5)
		}
	}
	return img, nil
}

// Image64 converts one layer to a 16-bit NRGBA64 image, with the same
// channel mapping and curve rules as Image.
func (f *Framebuffer[T]) Image64(layer int) (*image.NRGBA64, error) {
	if layer < 0 || layer >= f.format.Len() {
		return nil, fmt.Errorf("%w: %d of %d", ErrNoSuchLayer, layer, f.format.Len())
	}
	channels := f.format.Channels()
	if len(f.data) < f.width*f.height*channels {
		return nil, ErrShortFrame
	}

	l := f.format.Layer(layer)
	srgb := f.isFloat()

	img := image.NewNRGBA64(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			base := (y*f.width+x)*channels + l.Offset()
			r, g, b, a := layerRGBA(f.data, base, l.Depth())
			if srgb {
				r, g, b = srgbEncode(r), srgbEncode(g), srgbEncode(b)
			}
			img.SetNRGBA64(x, y, color.NRGBA64{
				R: uint16(r*65535 + 0.5),
				G: uint16(g*65535 + 0.5),
				B: uint16(b*65535 + 0.5),
				A: uint16(a*65535 + 0.5),
			})
		}
	}
	return img, nil
}

// layerRGBA reads one pixel of one layer starting at base and maps its
// channels to normalized r, g, b, a.
func layerRGBA[T Scalar](data []T, base int, depth LayerDepth) (r, g, b, a float32) {
	a = 1
	switch depth {
	case OneChannel:
		r = normalized(data[base])
		g, b = r, r
	case OneChannelAndAlpha:
		r = normalized(data[base])
		g, b = r, r
		a = normalized(data[base+1])
	case Color, Vector:
		r = normalized(data[base])
		g = normalized(data[base+1])
		b = normalized(data[base+2])
	case ColorAndAlpha, VectorAndAlpha:
		r = normalized(data[base])
		g = normalized(data[base+1])
		b = normalized(data[base+2])
		a = normalized(data[base+3])
	case FourChannels:
		r = normalized(data[base])
		g = normalized(data[base+1])
		b = normalized(data[base+2])
		a = normalized(data[base+3])
	case FourChannelsAndAlpha:
		r = normalized(data[base])
		g = normalized(data[base+1])
		b = normalized(data[base+2])
		a = normalized(data[base+4])
	}
	return r, g, b, a
}

// SavePNG saves one layer of the frame to an 8-bit PNG file.
func (f *Framebuffer[T]) SavePNG(path string, layer int) error {
	img, err := f.Image(layer)
	if err != nil {
		return err
	}
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()
	return png.Encode(file, img)
}

// SaveTIFF saves one layer of the frame to a 16-bit TIFF file.
func (f *Framebuffer[T]) SaveTIFF(path string, layer int) error {
	img, err := f.Image64(layer)
	if err != nil {
		return err
	}
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()
	return tiff.Encode(file, img, nil)
}
