package color

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestHexConversions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0a", IntToHex(10))
	assert.Equal(t, "ff", IntToHex(255))
	assert.Equal(t, "#ff0010", RgbToHex(RGB{R: 255, G: 0, B: 16}))

	tests := []struct {
		in   string
		want RGB
		ok   bool
	}{
		{"#FF0010", RGB{R: 255, G: 0, B: 16}, true},
		{"ff0010", RGB{R: 255, G: 0, B: 16}, true},
		{"#abc", RGB{R: 170, G: 187, B: 204}, true},
		{"abc", RGB{R: 170, G: 187, B: 204}, true},
		{"#12345", RGB{}, false},
		{"#ff00100", RGB{}, false},
		{"zzz", RGB{}, false},
		{"", RGB{}, false},
	}
	for _, tt := range tests {
		got, ok := HexToRgb(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, c := range []RGB{{0, 0, 0}, {1, 2, 3}, {200, 100, 50}} {
		back, ok := HexToRgb(RgbToHex(c))
		require.True(t, ok)
		assert.Equal(t, c, back)
	}
}

func TestHexToRgba(t *testing.T) {
	t.Parallel()

	got, err := HexToRgba("#000", 0.5)
	require.NoError(t, err)
	assert.Equal(t, "rgba(0, 0, 0, 0.5)", got)

	_, err = HexToRgba("nope", DefaultOpacity)
	assert.Error(t, err)
}

func TestRandomColors(t *testing.T) {
	t.Parallel()

	c := RandomRgb(map[string]uint8{"r": 7, "x": 9})
	assert.Equal(t, uint8(7), c.R)

	assert.Regexp(t, hexColor, RandomHex(nil))
	assert.True(t, strings.HasPrefix(RandomHex(map[string]uint8{"r": 255}), "#ff"))
	assert.True(t, strings.HasSuffix(RandomRgba(0.3, nil), ", 0.3)"))
}

func TestGenerateUnique(t *testing.T) {
	t.Parallel()

	hexes := GenerateUniqueHexes(20)
	assert.Len(t, hexes, 20)
	seen := map[string]bool{}
	for _, h := range hexes {
		assert.Regexp(t, hexColor, h)
		assert.False(t, seen[h], "duplicate %s", h)
		seen[h] = true
	}

	for _, c := range GenerateUniqueRgbs(5, 0.3) {
		assert.True(t, strings.HasPrefix(c, "rgba("), c)
		assert.True(t, strings.HasSuffix(c, ", 0.3)"), c)
	}
	for _, c := range GenerateUniqueRgbs(5, 1) {
		assert.True(t, strings.HasPrefix(c, "rgb("), c)
	}
	assert.Empty(t, GenerateUniqueHexes(0))
}

func TestColorParse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#fff", ColorParse("fff"))
	assert.Equal(t, "#fff", ColorParse("#fff"))
	assert.Equal(t, "rgb(1, 2, 3)", ColorParse("rgb(1, 2, 3)"))
	assert.Equal(t, "hsl(0, 0%, 0%)", ColorParse("hsl(0, 0%, 0%)"))
	assert.Equal(t, "#000000", Palette["black"])
}
