// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gputex

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/ndspy"
)

// Common errors returned by gputex operations.
var (
	// ErrNoSuchLayer is returned when a layer index is out of range.
	ErrNoSuchLayer = errors.New("gputex: no such layer")

	// ErrNoFormat is returned when no texture format exists for a
	// scalar type and channel count combination.
	ErrNoFormat = errors.New("gputex: no texture format for layer")

	// ErrShortFrame is returned when the frame data is smaller than
	// width*height*channels elements.
	ErrShortFrame = errors.New("gputex: frame data shorter than frame")
)

// texChannels maps a layer depth to the channel count of the texture
// that holds it. GPUs have no native three-channel formats, so color
// and vector layers are padded to four channels; a quad with a detached
// alpha also lands in four channels (rgb plus the alpha).
func texChannels(depth ndspy.LayerDepth) int {
	switch depth.Channels() {
	case 1:
		return 1
	case 2:
		return 2
	default:
		return 4
	}
}

// Format returns the texture format for one decoded layer of a session
// with the given scalar type.
//
// Float data maps to the float formats, unsigned 8-bit to the unorm
// formats (they arrive pre-quantized for display), and the remaining
// integer widths to the uint/sint formats of matching width.
func Format(scalar ndspy.ScalarType, depth ndspy.LayerDepth) (gputypes.TextureFormat, error) {
	n := texChannels(depth)

	var f gputypes.TextureFormat
	switch scalar {
	case ndspy.ScalarF32:
		switch n {
		case 1:
			f = gputypes.TextureFormatR32Float
		case 2:
			f = gputypes.TextureFormatRG32Float
		case 4:
			f = gputypes.TextureFormatRGBA32Float
		}
	case ndspy.ScalarU32:
		switch n {
		case 1:
			f = gputypes.TextureFormatR32Uint
		case 2:
			f = gputypes.TextureFormatRG32Uint
		case 4:
			f = gputypes.TextureFormatRGBA32Uint
		}
	case ndspy.ScalarI32:
		switch n {
		case 1:
			f = gputypes.TextureFormatR32Sint
		case 2:
			f = gputypes.TextureFormatRG32Sint
		case 4:
			f = gputypes.TextureFormatRGBA32Sint
		}
	case ndspy.ScalarU16:
		switch n {
		case 1:
			f = gputypes.TextureFormatR16Uint
		case 2:
			f = gputypes.TextureFormatRG16Uint
		case 4:
			f = gputypes.TextureFormatRGBA16Uint
		}
	case ndspy.ScalarI16:
		switch n {
		case 1:
			f = gputypes.TextureFormatR16Sint
		case 2:
			f = gputypes.TextureFormatRG16Sint
		case 4:
			f = gputypes.TextureFormatRGBA16Sint
		}
	case ndspy.ScalarU8:
		switch n {
		case 1:
			f = gputypes.TextureFormatR8Unorm
		case 2:
			f = gputypes.TextureFormatRG8Unorm
		case 4:
			f = gputypes.TextureFormatRGBA8Unorm
		}
	case ndspy.ScalarI8:
		switch n {
		case 1:
			f = gputypes.TextureFormatR8Sint
		case 2:
			f = gputypes.TextureFormatRG8Sint
		case 4:
			f = gputypes.TextureFormatRGBA8Sint
		}
	}

	if f == gputypes.TextureFormatUndefined {
		return gputypes.TextureFormatUndefined,
			fmt.Errorf("%w: %s x%d", ErrNoFormat, scalar, depth.Channels())
	}
	return f, nil
}

// one is the opaque-alpha value of the scalar type.
func one[T ndspy.Scalar]() T {
	var v T
	switch p := any(&v).(type) {
	case *float32:
		*p = 1
	case *uint8:
		*p = 255
	case *int8:
		*p = 127
	case *uint16:
		*p = 65535
	case *int16:
		*p = 32767
	case *uint32:
		*p = 4294967295
	case *int32:
		*p = 2147483647
	}
	return v
}

// Pack extracts one layer of a finished frame into tightly packed texel
// data ready for a texture upload, and returns the matching format.
//
// The texel layout follows Format: one or two channels are copied
// verbatim; three-channel layers are padded to four with opaque alpha;
// layers with alpha place it in the fourth channel. Returned bytes are
// rows of width texels, no padding between rows.
func Pack[T ndspy.Scalar](fb *ndspy.Framebuffer[T], layer int) ([]byte, gputypes.TextureFormat, error) {
	format := fb.Format()
	if layer < 0 || layer >= format.Len() {
		return nil, gputypes.TextureFormatUndefined,
			fmt.Errorf("%w: %d of %d", ErrNoSuchLayer, layer, format.Len())
	}

	l := format.Layer(layer)
	tf, err := Format(scalarOf[T](), l.Depth())
	if err != nil {
		return nil, gputypes.TextureFormatUndefined, err
	}

	channels := format.Channels()
	w, h := fb.Width(), fb.Height()
	data := fb.Data()
	if len(data) < w*h*channels {
		return nil, gputypes.TextureFormatUndefined, ErrShortFrame
	}

	n := texChannels(l.Depth())
	if w*h == 0 {
		return nil, tf, nil
	}
	texels := make([]T, w*h*n)
	for p := 0; p < w*h; p++ {
		src := p*channels + l.Offset()
		dst := p * n
		writeTexel(texels[dst:dst+n], data[src:], l.Depth())
	}

	var t T
	size := int(unsafe.Sizeof(t))
	bytes := unsafe.Slice((*byte)(unsafe.Pointer(&texels[0])), len(texels)*size)
	return bytes, tf, nil
}

// writeTexel copies one pixel of one layer into its texel slot,
// applying the padding rules.
func writeTexel[T ndspy.Scalar](dst, src []T, depth ndspy.LayerDepth) {
	switch depth {
	case ndspy.OneChannel:
		dst[0] = src[0]
	case ndspy.OneChannelAndAlpha:
		dst[0] = src[0]
		dst[1] = src[1]
	case ndspy.Color, ndspy.Vector:
		dst[0], dst[1], dst[2] = src[0], src[1], src[2]
		dst[3] = one[T]()
	case ndspy.ColorAndAlpha, ndspy.VectorAndAlpha, ndspy.FourChannels:
		dst[0], dst[1], dst[2], dst[3] = src[0], src[1], src[2], src[3]
	case ndspy.FourChannelsAndAlpha:
		dst[0], dst[1], dst[2] = src[0], src[1], src[2]
		dst[3] = src[4]
	}
}

// scalarOf returns the wire scalar type of T.
func scalarOf[T ndspy.Scalar]() ndspy.ScalarType {
	var v T
	switch any(v).(type) {
	case float32:
		return ndspy.ScalarF32
	case uint32:
		return ndspy.ScalarU32
	case int32:
		return ndspy.ScalarI32
	case uint16:
		return ndspy.ScalarU16
	case int16:
		return ndspy.ScalarI16
	case uint8:
		return ndspy.ScalarU8
	case int8:
		return ndspy.ScalarI8
	}
	return ndspy.ScalarNone
}
