// Package theme supplies the color tokens the picker consumes: named
// palette colors with shade variants, the default avatar color pair,
// and the preset accents offered in the color swatch row.
package theme

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// palette maps token names to their base (shade 500) color
var palette = map[string]string{
	"gray":   "#9ca3af",
	"red":    "#ef4444",
	"orange": "#f97316",
	"yellow": "#eab308",
	"green":  "#22c55e",
	"blue":   "#3b82f6",
	"purple": "#a855f7",
	"pink":   "#ec4899",
}

const (
	baseShade = 500
	minShade  = 100
	maxShade  = 900
)

// VariableColor resolves a palette token to a hex color string. Shade
// follows the usual 100..900 scale where 500 is the base color, lower
// shades are lighter and higher shades darker. altMode returns the
// desaturated variant used on alternate (dark) backgrounds. Unknown
// names resolve to the gray token so callers always get a usable color.
func VariableColor(name string, shade int, altMode bool) string {
	hex, ok := palette[name]
	if !ok {
		hex = palette["gray"]
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}

	if shade < minShade {
		shade = minShade
	}
	if shade > maxShade {
		shade = maxShade
	}

	h, s, l := c.Hsl()

	// Map shade distance from the base into a lightness offset.
	// 100 lands near 0.9 lightness, 900 near 0.15.
	t := float64(shade-baseShade) / float64(maxShade-baseShade)
	l = clamp01(l - t*(l-0.15))
	if shade < baseShade {
		t = float64(baseShade-shade) / float64(baseShade-minShade)
		_, _, base := c.Hsl()
		l = clamp01(base + t*(0.9-base))
	}

	if altMode {
		s = clamp01(s * 0.65)
	}

	return colorful.Hsl(h, s, l).Clamped().Hex()
}

// DefaultAvatarColors returns the foreground/background pair applied to
// avatar items that carry no explicit colors.
func DefaultAvatarColors() (color, background string) {
	return VariableColor("gray", 100, false), VariableColor("gray", 700, false)
}

// PresetNames lists the palette tokens offered as color presets, in a
// stable order.
func PresetNames() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetColor resolves a preset name to the accent color used for
// icon foreground overrides.
func PresetColor(name string) string {
	return VariableColor(name, 500, false)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
