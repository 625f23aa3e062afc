package ndspy

import (
	"strings"
)

// InvalidName replaces channel names that were not valid UTF-8 on the
// wire. Renderer strings are trusted but verified; a bad name must not
// abort the session.
const InvalidName = "<invalid>"

// defaultLayerName is used for a layer whose channels carry no prefix
// (plain "r", "g", "b", "a"). By convention that is the primary color
// output.
const defaultLayerName = "Ci"

// PixelFormat is the decoded per-pixel channel layout of a display
// session: an ordered list of layers, in the order the renderer declared
// its channels. It is built once when a session opens and is read-only
// afterwards.
type PixelFormat struct {
	layers []Layer
}

// Layers returns the decoded layers in declaration order.
func (f *PixelFormat) Layers() []Layer { return f.layers }

// Len returns the number of layers.
func (f *PixelFormat) Len() int { return len(f.layers) }

// Layer returns the layer at index i.
func (f *PixelFormat) Layer(i int) Layer { return f.layers[i] }

// Channels returns the total number of scalar channels in one pixel,
// the sum over all layers.
func (f *PixelFormat) Channels() int {
	total := 0
	for _, l := range f.layers {
		total += l.depth.Channels()
	}
	return total
}

// Clone returns a copy sharing no state with f.
func (f *PixelFormat) Clone() PixelFormat {
	layers := make([]Layer, len(f.layers))
	copy(layers, f.layers)
	return PixelFormat{layers: layers}
}

// suffixClass tags the channel suffix of one declared channel name.
// The decoder's layer-boundary rules are written against these classes
// rather than raw strings, so the special cases (lone alpha, the legacy
// "000" scalar alias) are enumerated exactly once.
type suffixClass uint8

const (
	// suffixOther is any suffix the conventions do not recognize.
	suffixOther suffixClass = iota
	suffixR
	suffixG
	suffixB
	suffixA
	suffixX
	suffixY
	suffixZ
	// suffixS is a single scalar channel ("s", or the legacy "000").
	suffixS
)

// initial reports whether this suffix can start a new layer.
func (c suffixClass) initial() bool {
	return c == suffixR || c == suffixX || c == suffixS
}

// terminal reports whether this suffix can end a layer.
func (c suffixClass) terminal() bool {
	return c == suffixB || c == suffixZ || c == suffixS || c == suffixA
}

func classifySuffix(s string) suffixClass {
	switch s {
	case "r":
		return suffixR
	case "g":
		return suffixG
	case "b":
		return suffixB
	case "a":
		return suffixA
	case "x":
		return suffixX
	case "y":
		return suffixY
	case "z":
		return suffixZ
	case "s":
		return suffixS
	default:
		return suffixOther
	}
}

// splitChannelName splits a declared channel name into its layer prefix
// (text before the last dot, empty when there is no dot) and its channel
// suffix class. The legacy "000" suffix is a scalar channel alias.
func splitChannelName(name string) (prefix string, class suffixClass) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return "", classifySuffix(name)
	}
	suffix := name[i+1:]
	if suffix == "000" {
		return name[:i], suffixS
	}
	return name[:i], classifySuffix(suffix)
}

// DecodePixelFormat builds the layer list from the renderer-declared
// channel names, one name per scalar element, in format order.
//
// The decode is a single left-to-right scan with one element of
// lookbehind: a new layer starts where the previous suffix class is
// layer-terminal (b, z, s, or a) and the current one is layer-initial
// (r, x, or s). The scan wraps around by one extra step so the final
// pending layer is flushed without an end-of-list special case. Channels
// with an empty prefix belong to the conventional primary color layer
// "Ci"; an unprefixed "a" attaches as alpha to whatever layer is being
// accumulated.
//
// The result is a pure function of the input: decoding the same names
// twice yields identical layouts.
func DecodePixelFormat(channels []string) PixelFormat {
	if len(channels) == 0 {
		return PixelFormat{}
	}

	prevPrefix, prevClass := splitChannelName(channels[0])

	var layers []Layer
	depth := OneChannel
	offset := 0

	// An alpha channel extends the accumulated layer. A group that
	// already ends in alpha becomes a quad with a detached alpha.
	addAlpha := func() {
		switch depth {
		case ColorAndAlpha, VectorAndAlpha:
			depth = FourChannelsAndAlpha
		default:
			depth = depth.withAlpha()
		}
	}

	// The first element seeds the scan state; the loop then walks the
	// remaining elements and revisits the first one, so the final
	// pending layer is flushed by an ordinary boundary check.
	for step := 1; step <= len(channels); step++ {
		i := step % len(channels)
		prefix, class := splitChannelName(channels[i])

		if prevClass.terminal() && class.initial() {
			// Layer boundary: emit the accumulated layer and start over.
			name := prevPrefix
			if name == "" {
				name = defaultLayerName
			}
			layers = append(layers, Layer{name: name, depth: depth, offset: offset})

			prevPrefix = prefix
			prevClass = class
			depth = OneChannel
			offset = i
			continue
		}

		switch {
		case prefix == "" && class == suffixA:
			// A lone alpha belongs to the layer being accumulated.
			addAlpha()
		case prefix == prevPrefix:
			// Same layer: the suffix class decides the depth.
			switch class {
			case suffixR, suffixG, suffixB:
				depth = Color
			case suffixX, suffixY, suffixZ:
				depth = Vector
			case suffixA:
				addAlpha()
			}
		default:
			// New prefix without a boundary: start tracking it; the
			// emission happens at the next boundary.
			prevPrefix = prefix
		}
		prevClass = class
	}

	return PixelFormat{layers: layers}
}
