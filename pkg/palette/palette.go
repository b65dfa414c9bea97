// Package palette builds the 256-entry color lookup tables used to color
// iteration counts.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Size is the number of entries in every Palette.
const Size = 256

const (
	// builtinLUT and customLUT are the resolutions gradients are quantized to
	// before being sampled down to Size entries.
	builtinLUT = 256
	customLUT  = 1024
)

var ErrInvalidPaletteSpec = errors.New("invalid palette spec")

// A Palette maps palette indices to opaque colors.
type Palette [Size]color.RGBA

// Color returns p as a color.Palette for use with image.Paletted.
func (p *Palette) Color() color.Palette {
	cp := make(color.Palette, Size)
	for i, c := range p {
		cp[i] = c
	}
	return cp
}

// Build returns the palette described by spec. spec is either the name of a
// built-in gradient (see Names) or underscore-separated 6-digit hex colors,
// such as "ff0000_00ff00", which are interpolated linearly in order.
func Build(spec string) (Palette, error) {
	if anchors, ok := lookup(spec); ok {
		g, err := parseBuiltin(anchors)
		if err != nil {
			return Palette{}, fmt.Errorf("gradient %q: %w", spec, err)
		}
		return g.sample(), nil
	}

	g, err := parseCustom(spec)
	if err != nil {
		return Palette{}, err
	}
	return g.sample(), nil
}

// gradient is a piecewise-linear path through evenly spaced anchors,
// quantized to a lookup table of lut entries.
type gradient struct {
	anchors []colorful.Color
	lut     int
}

func parseBuiltin(hexes []string) (gradient, error) {
	anchors := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex("#" + h)
		if err != nil {
			return gradient{}, err
		}
		anchors[i] = c
	}
	return gradient{anchors: anchors, lut: builtinLUT}, nil
}

func parseCustom(spec string) (gradient, error) {
	if spec == "" {
		return gradient{}, fmt.Errorf("%w: empty", ErrInvalidPaletteSpec)
	}

	parts := strings.Split(strings.ToLower(spec), "_")
	anchors := make([]colorful.Color, len(parts))
	for i, part := range parts {
		c, err := parseAnchor(part)
		if err != nil {
			return gradient{}, err
		}
		anchors[i] = c
	}
	return gradient{anchors: anchors, lut: customLUT}, nil
}

// parseAnchor reads "rrggbb". Channels are divided by 256, so 0xff maps just
// below 1.
func parseAnchor(s string) (colorful.Color, error) {
	if len(s) != 6 {
		return colorful.Color{}, fmt.Errorf("%w: %q is not 6 hex digits", ErrInvalidPaletteSpec, s)
	}

	var ch [3]float64
	for i := range ch {
		v, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidPaletteSpec, s, err)
		}
		ch[i] = float64(v) / 256.0
	}
	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// at returns the gradient color at position t in [0, 1].
func (g gradient) at(t float64) colorful.Color {
	if len(g.anchors) == 1 {
		return g.anchors[0]
	}

	pos := t * float64(len(g.anchors)-1)
	i := int(math.Floor(pos))
	if i < 0 {
		return g.anchors[0]
	}
	if i >= len(g.anchors)-1 {
		return g.anchors[len(g.anchors)-1]
	}
	return g.anchors[i].BlendRgb(g.anchors[i+1], pos-float64(i))
}

// sample reads Size evenly spaced entries from the gradient's lookup table.
// Entry i reads table slot floor(i*lut/Size), which sits at slot/(lut-1).
func (g gradient) sample() Palette {
	var p Palette
	for i := range p {
		slot := i * g.lut / Size
		c := g.at(float64(slot) / float64(g.lut-1))
		p[i] = color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 0xff}
	}
	return p
}

func channel(v float64) uint8 {
	v = math.Floor(v * 255)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}
