package ndspy

import "testing"

func TestLayerDepthChannels(t *testing.T) {
	tests := []struct {
		depth LayerDepth
		n     int
		alpha bool
	}{
		{OneChannel, 1, false},
		{OneChannelAndAlpha, 2, true},
		{Color, 3, false},
		{ColorAndAlpha, 4, true},
		{Vector, 3, false},
		{VectorAndAlpha, 4, true},
		{FourChannels, 4, false},
		{FourChannelsAndAlpha, 5, true},
	}

	for _, tt := range tests {
		if got := tt.depth.Channels(); got != tt.n {
			t.Errorf("%s.Channels() = %d, want %d", tt.depth, got, tt.n)
		}
		if got := tt.depth.HasAlpha(); got != tt.alpha {
			t.Errorf("%s.HasAlpha() = %v, want %v", tt.depth, got, tt.alpha)
		}
	}
}

func TestLayerDepthWithAlpha(t *testing.T) {
	tests := []struct {
		in, want LayerDepth
	}{
		{OneChannel, OneChannelAndAlpha},
		{Color, ColorAndAlpha},
		{Vector, VectorAndAlpha},
		{FourChannels, FourChannelsAndAlpha},
		// Already carrying alpha: unchanged.
		{OneChannelAndAlpha, OneChannelAndAlpha},
		{ColorAndAlpha, ColorAndAlpha},
		{FourChannelsAndAlpha, FourChannelsAndAlpha},
	}

	for _, tt := range tests {
		if got := tt.in.withAlpha(); got != tt.want {
			t.Errorf("%s.withAlpha() = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestLayerDepthString(t *testing.T) {
	if got := Color.String(); got != "Color" {
		t.Errorf("Color.String() = %q", got)
	}
	if got := LayerDepth(250).String(); got != "Unknown" {
		t.Errorf("unknown depth String() = %q", got)
	}
}
