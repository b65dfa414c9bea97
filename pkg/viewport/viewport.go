// Package viewport maps pixels of an output raster to points in the complex
// plane.
package viewport

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidSize = errors.New("image dimensions must be positive")
	// ErrDegenerate is returned when the short side of the image is a single
	// pixel, which leaves no distance to scale across.
	ErrDegenerate  = errors.New("image short side must be at least 2 pixels")
	ErrInvalidZoom = errors.New("zoom must be positive and finite")
)

// A Viewport is the mapping between pixel coordinates and the complex plane.
//
// The short side of the image always spans 2/Zoom units, centered on -Shift.
type Viewport struct {
	Shift  complex128
	Zoom   float64
	Width  int
	Height int

	scale float64
}

// New validates the geometry and returns a Viewport ready for mapping.
func New(width, height int, shift complex128, zoom float64) (Viewport, error) {
	if width <= 0 || height <= 0 {
		return Viewport{}, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	if min(width, height) < 2 {
		return Viewport{}, fmt.Errorf("%w: got %dx%d", ErrDegenerate, width, height)
	}
	if !(zoom > 0) || math.IsInf(zoom, 1) {
		return Viewport{}, fmt.Errorf("%w: got %v", ErrInvalidZoom, zoom)
	}

	return Viewport{
		Shift:  shift,
		Zoom:   zoom,
		Width:  width,
		Height: height,
		scale:  2.0 / (zoom * float64(min(width, height)-1)),
	}, nil
}

// Scale is the distance in the complex plane between adjacent pixels.
func (v Viewport) Scale() float64 {
	return v.scale
}

// Map returns the sample point for pixel (x, y). The center pixel
// (Width/2, Height/2) maps to exactly -Shift regardless of zoom.
func (v Viewport) Map(x, y int) complex128 {
	return complex(
		float64(x-v.Width/2)*v.scale-real(v.Shift),
		float64(-y+v.Height/2)*v.scale-imag(v.Shift),
	)
}
