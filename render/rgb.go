package render

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a backend-neutral 24-bit color
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack      = RGB{0, 0, 0}
	RGBWhite      = RGB{255, 255, 255}
	RGBGround     = RGB{38, 56, 32}    // Buildable grass
	RGBPath       = RGB{155, 118, 83}  // Dirt track
	RGBGrid       = RGB{48, 68, 40}    // Cell outline on grass
	RGBHealthBack = RGB{200, 30, 30}   // Missing health
	RGBHealthFill = RGB{40, 200, 40}   // Remaining health
	RGBAura       = RGB{150, 90, 220}  // Caster aura ring
	RGBRange      = RGB{90, 90, 90}    // Tower range ring
	RGBBuilding   = RGB{120, 120, 60}  // Tower under construction
	RGBSpawner    = RGB{60, 60, 80}    // Empty spawner slot
	RGBSelected   = RGB{255, 200, 0}   // Selected spawner outline
	RGBHUD        = RGB{20, 20, 28}    // Status panel background
	RGBText       = RGB{220, 220, 220} // Default text
	RGBDimText    = RGB{110, 110, 110} // Unaffordable options
	RGBWon        = RGB{80, 220, 120}
	RGBLost       = RGB{230, 70, 70}
)

// Shot tracer colors by tower visual class
var shotColors = map[string]RGB{
	"arrow":  {230, 230, 200},
	"magic":  {120, 180, 255},
	"cannon": {255, 150, 40},
}

// Tower body colors by visual class
var towerColors = map[string]RGB{
	"arrow":  {110, 80, 50},
	"magic":  {60, 70, 160},
	"cannon": {70, 70, 70},
}

// namedColors covers the color names used by creep definitions
var namedColors = map[string]RGB{
	"black":     {0, 0, 0},
	"white":     {255, 255, 255},
	"red":       {255, 0, 0},
	"green":     {0, 128, 0},
	"blue":      {0, 0, 255},
	"yellow":    {255, 255, 0},
	"orange":    {255, 165, 0},
	"purple":    {128, 0, 128},
	"grey":      {128, 128, 128},
	"gray":      {128, 128, 128},
	"darkgrey":  {169, 169, 169},
	"darkgray":  {169, 169, 169},
	"lightgrey": {211, 211, 211},
	"brown":     {165, 42, 42},
	"cyan":      {0, 255, 255},
	"magenta":   {255, 0, 255},
	"pink":      {255, 192, 203},
	"gold":      {255, 215, 0},
	"silver":    {192, 192, 192},
	"navy":      {0, 0, 128},
	"teal":      {0, 128, 128},
	"maroon":    {128, 0, 0},
	"olive":     {128, 128, 0},
}

// ParseColor resolves a color name or #rrggbb/#rgb hex string
// Unknown values resolve to white
func ParseColor(s string) RGB {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBWhite
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}

// Scale multiplies each channel by f in [0, 1]
func (c RGB) Scale(f float64) RGB {
	return RGB{R: clamp(float64(c.R) * f), G: clamp(float64(c.G) * f), B: clamp(float64(c.B) * f)}
}

// Lerp blends from c toward o by t in [0, 1]
func (c RGB) Lerp(o RGB, t float64) RGB {
	return RGB{
		R: clamp(float64(c.R) + (float64(o.R)-float64(c.R))*t),
		G: clamp(float64(c.G) + (float64(o.G)-float64(c.G))*t),
		B: clamp(float64(c.B) + (float64(o.B)-float64(c.B))*t),
	}
}

// Color converts to the image/color model used by pixel backends
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// ShotColor returns the tracer color for a tower visual class
func ShotColor(label string) RGB {
	if c, ok := shotColors[label]; ok {
		return c
	}
	return RGBWhite
}

// TowerColor returns the body color for a tower visual class
func TowerColor(label string) RGB {
	if c, ok := towerColors[label]; ok {
		return c
	}
	return RGBGrid
}
