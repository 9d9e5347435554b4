package color

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/ib-77/utilitarian/pkg/utl/obj"
)

const DefaultOpacity = 0.6

var (
	prefixedRegex = regexp.MustCompile(`^#|^rgb|^hsl`)
	hexRegex      = regexp.MustCompile(`(?i)^#?([a-f\d]{3}|[a-f\d]{6})$`)
)

type RGB struct {
	R, G, B uint8
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// IntToHex formats c as two lower case hex digits.
func IntToHex(c uint8) string {
	return fmt.Sprintf("%02x", c)
}

func RgbToHex(c RGB) string {
	return c.colorful().Hex()
}

// HexToRgb parses "#rrggbb" or "#rgb", with or without the leading "#".
func HexToRgb(hex string) (RGB, bool) {
	if !hexRegex.MatchString(hex) {
		return RGB{}, false
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, false
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, true
}

func HexToRgba(hex string, opacity float64) (string, error) {
	c, ok := HexToRgb(hex)
	if !ok {
		return "", errors.Errorf("%q is not a hex color", hex)
	}
	return rgba(c, opacity), nil
}

// RandomRgb returns a random color. overrides may pin any of the "r", "g" and
// "b" channels; other keys are ignored.
func RandomRgb(overrides map[string]uint8) RGB {
	c := RGB{
		R: uint8(rand.IntN(256)),
		G: uint8(rand.IntN(256)),
		B: uint8(rand.IntN(256)),
	}

	for k, v := range obj.PruneEmpties(obj.Pick(overrides, "r", "g", "b")) {
		switch k {
		case "r":
			c.R = v
		case "g":
			c.G = v
		case "b":
			c.B = v
		}
	}
	return c
}

func RandomRgba(opacity float64, overrides map[string]uint8) string {
	return rgba(RandomRgb(overrides), opacity)
}

func RandomHex(overrides map[string]uint8) string {
	return RgbToHex(RandomRgb(overrides))
}

// GenerateUniqueHexes returns size distinct random hex colors.
func GenerateUniqueHexes(size int) []string {
	return unique(size, func() string { return RandomHex(nil) })
}

// GenerateUniqueRgbs returns size distinct random colors, as rgba strings when
// 0 < opacity < 1 and as rgb strings otherwise.
func GenerateUniqueRgbs(size int, opacity float64) []string {
	create := func() string {
		c := RandomRgb(nil)
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	if opacity > 0 && opacity < 1 {
		create = func() string { return RandomRgba(opacity, nil) }
	}
	return unique(size, create)
}

// ColorParse prefixes a bare hex value with "#" and leaves rgb, hsl and "#"
// notations alone.
func ColorParse(c string) string {
	if prefixedRegex.MatchString(c) {
		return c
	}
	return "#" + c
}

func unique(size int, create func() string) []string {
	seen := make(map[string]struct{}, size)
	out := make([]string, 0, size)
	for len(out) < size {
		c := create()
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func rgba(c RGB, opacity float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %v)", c.R, c.G, c.B, opacity)
}
