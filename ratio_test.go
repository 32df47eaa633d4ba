package ratiobox

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRatioFloat(t *testing.T) {
	for _, r := range []float32{0, 0.5, 1, 1.5, 2.35} {
		box, err := NewFromAttributes(MapAttributes{AttrRatio: float64(r)})
		require.NoError(t, err)
		assert.Equal(t, r, box.Ratio())
	}
}

func TestResolveRatioFloatString(t *testing.T) {
	f, err := ResolveRatio(MapAttributes{AttrRatio: "1.25"})
	require.NoError(t, err)
	assert.Equal(t, float32(1.25), f)
}

func TestResolveRatioPresets(t *testing.T) {
	tests := []struct {
		code int64
		want float64
	}{
		{-1, 0.75},
		{-2, 0.5625},
		{-3, 1 / 1.85},
		{-4, 1 / 2.39},
		{-5, 1 / 1.375},
		{-6, 1 / 1.43},
		{-7, 0.5},
		{-8, 0.6180339887},
		{-9, 0.4142135624},
		{-10, 1.4142135624},
		{-11, 11 / 8.5},
	}
	for _, tt := range tests {
		f, err := ResolveRatio(MapAttributes{AttrRatio: tt.code})
		require.NoError(t, err, "code %d", tt.code)
		assert.InDelta(t, tt.want, f, 1e-6, "code %d", tt.code)

		p, ok := PresetFromCode(int(tt.code))
		require.True(t, ok)
		assert.InDelta(t, tt.want, p.Ratio(), 1e-6, "preset %s", p)
	}
	assert.Len(t, Presets(), len(tests))
}

func TestResolveRatioPresetTruncates(t *testing.T) {
	f, err := ResolveRatio(MapAttributes{AttrRatio: -2.7})
	require.NoError(t, err)
	assert.InDelta(t, 0.5625, f, 1e-6)
}

func TestResolveRatioUnknownPreset(t *testing.T) {
	_, err := ResolveRatio(MapAttributes{AttrRatio: int64(-12)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRatio))

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, AttrRatio, cfgErr.Attr)
	assert.Equal(t, "-12", cfgErr.Value)
}

func TestResolveRatioFraction(t *testing.T) {
	f, err := ResolveRatio(MapAttributes{AttrRatio: "50%"})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, f, 1e-6)

	f, err = ResolveRatio(MapAttributes{AttrRatio: "150%p"})
	require.NoError(t, err)
	assert.InDelta(t, 1.5, f, 1e-6)
}

func TestResolveRatioProportion(t *testing.T) {
	tests := map[string]float64{
		"16:9":    0.5625,
		"4:3":     0.75,
		" 2 : 1 ": 0.5,
		"1:1.5":   1.5,
	}
	for in, want := range tests {
		f, err := ResolveRatio(MapAttributes{AttrRatio: in})
		require.NoError(t, err, in)
		assert.InDelta(t, want, f, 1e-6, in)
	}
}

func TestResolveRatioInvalid(t *testing.T) {
	for _, attrs := range []MapAttributes{
		{},
		{AttrRatio: "abc"},
		{AttrRatio: "0:5"},
		{AttrRatio: "-16:9"},
		{AttrRatio: "NaN"},
		{AttrRatio: "Inf"},
		{AttrRatio: true},
	} {
		_, err := ResolveRatio(attrs)
		assert.ErrorIs(t, err, ErrInvalidRatio, "%v", attrs)
	}
}

func TestSetProportion(t *testing.T) {
	box := New()
	require.NoError(t, box.SetProportion("16:9"))
	assert.InDelta(t, 0.5625, box.Ratio(), 1e-6)

	require.NoError(t, box.SetProportion("3:2"))
	assert.InDelta(t, 2.0/3.0, box.Ratio(), 1e-6)
}

func TestSetProportionMalformed(t *testing.T) {
	box := New()
	box.SetRatio(0.75)
	for _, s := range []string{"abc", "1:2:3", "1:", ":1", "", ":", "a:b"} {
		err := box.SetProportion(s)
		var cfgErr *ConfigError
		require.True(t, errors.As(err, &cfgErr), "%q", s)
		assert.ErrorIs(t, err, ErrInvalidRatio)
		assert.Equal(t, float32(0.75), box.Ratio(), "%q must not change the ratio", s)
	}
}

func TestSetRatioUnchecked(t *testing.T) {
	box := New()
	box.SetRatio(-3)
	assert.Equal(t, float32(-3), box.Ratio())
}

func TestSetPreset(t *testing.T) {
	box := New()
	require.NoError(t, box.SetPreset(PresetGolden))
	assert.InDelta(t, 0.618034, box.Ratio(), 1e-6)
	assert.ErrorIs(t, box.SetPreset(Preset(-40)), ErrInvalidRatio)
}

func TestResolveRatioIdempotent(t *testing.T) {
	attrs := MapAttributes{AttrRatio: "21:9"}
	first, err := ResolveRatio(attrs)
	require.NoError(t, err)
	second, err := ResolveRatio(attrs)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
