package ndspy

// LayerDepth identifies the number and meaning of the channels a layer
// is composed of.
type LayerDepth uint8

// Layer depth constants.
const (
	// OneChannel is a single scalar channel.
	OneChannel LayerDepth = iota

	// OneChannelAndAlpha is a scalar channel followed by alpha.
	OneChannelAndAlpha

	// Color is an rgb triplet.
	Color

	// ColorAndAlpha is an rgb triplet followed by alpha.
	ColorAndAlpha

	// Vector is an xyz triplet.
	Vector

	// VectorAndAlpha is an xyz triplet followed by alpha.
	VectorAndAlpha

	// FourChannels is a quadruple of values.
	FourChannels

	// FourChannelsAndAlpha is a quadruple of values followed by alpha.
	FourChannelsAndAlpha
)

// String returns a human-readable name for the layer depth.
func (d LayerDepth) String() string {
	switch d {
	case OneChannel:
		return "OneChannel"
	case OneChannelAndAlpha:
		return "OneChannelAndAlpha"
	case Color:
		return "Color"
	case ColorAndAlpha:
		return "ColorAndAlpha"
	case Vector:
		return "Vector"
	case VectorAndAlpha:
		return "VectorAndAlpha"
	case FourChannels:
		return "FourChannels"
	case FourChannelsAndAlpha:
		return "FourChannelsAndAlpha"
	default:
		return unknownStr
	}
}

// Channels returns the number of scalar channels this depth occupies
// inside a pixel.
func (d LayerDepth) Channels() int {
	switch d {
	case OneChannel:
		return 1
	case OneChannelAndAlpha:
		return 2
	case Color, Vector:
		return 3
	case ColorAndAlpha, VectorAndAlpha, FourChannels:
		return 4
	case FourChannelsAndAlpha:
		return 5
	default:
		return 0
	}
}

// HasAlpha reports whether this depth ends in an alpha channel.
func (d LayerDepth) HasAlpha() bool {
	switch d {
	case OneChannelAndAlpha, ColorAndAlpha, VectorAndAlpha, FourChannelsAndAlpha:
		return true
	default:
		return false
	}
}

// withAlpha returns the AndAlpha counterpart of a depth. Depths that
// already carry alpha are returned unchanged.
func (d LayerDepth) withAlpha() LayerDepth {
	switch d {
	case OneChannel:
		return OneChannelAndAlpha
	case Color:
		return ColorAndAlpha
	case Vector:
		return VectorAndAlpha
	case FourChannels:
		return FourChannelsAndAlpha
	default:
		return d
	}
}

// Layer describes one named group of consecutive channels inside a flat
// pixel: a color output, a vector AOV, a scalar AOV and so on.
//
// Offset is the index of the layer's first scalar element within one
// pixel's flat element array. A Layer is immutable once decoded.
type Layer struct {
	name   string
	depth  LayerDepth
	offset int
}

// Name returns the name of the layer.
func (l Layer) Name() string { return l.name }

// Depth returns the depth of the layer.
func (l Layer) Depth() LayerDepth { return l.depth }

// Offset returns the element offset of the layer inside a pixel.
func (l Layer) Offset() int { return l.offset }

// Channels is shorthand for Depth().Channels().
func (l Layer) Channels() int { return l.depth.Channels() }

// HasAlpha is shorthand for Depth().HasAlpha().
func (l Layer) HasAlpha() bool { return l.depth.HasAlpha() }
