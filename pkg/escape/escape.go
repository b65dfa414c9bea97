// Package escape counts how many steps of the quadratic map it takes an orbit
// to leave a disc around the origin.
package escape

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/willbeason/fracpix/pkg/transforms"
)

var ErrInvalidMaxIter = errors.New("max iterations must be positive")

// Kind selects which role the sample point plays in the recurrence.
type Kind int

const (
	// Julia seeds the orbit with the sample point and holds C fixed.
	Julia Kind = iota
	// Classic seeds the orbit with zero and uses the sample point as the
	// constant, the textbook Mandelbrot set.
	Classic
)

func (k Kind) String() string {
	switch k {
	case Julia:
		return "julia"
	case Classic:
		return "classic"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Params are the recurrence constant and iteration budget of a render.
type Params struct {
	C       complex128
	MaxIter int

	// radiusSq is (MaxIter * |C|)^2. An orbit escapes once |z|^2 reaches it.
	radiusSq float64
}

func NewParams(c complex128, maxIter int) (Params, error) {
	if maxIter <= 0 {
		return Params{}, fmt.Errorf("%w: got %d", ErrInvalidMaxIter, maxIter)
	}

	r := float64(maxIter) * cmplx.Abs(c)
	return Params{
		C:        c,
		MaxIter:  maxIter,
		radiusSq: r * r,
	}, nil
}

func (p Params) EscapeRadiusSq() float64 {
	return p.radiusSq
}

// Iterate runs z -> z^2 + C from z0 and returns the step count modulo
// MaxIter. Orbits that never escape and orbits that start outside the radius
// both return 0.
func (p Params) Iterate(z0 complex128) int {
	j := transforms.Julia2{C: p.C}

	z := z0
	n := 0
	for n < p.MaxIter && absSq(z) < p.radiusSq {
		z = j.Next(z)
		n++
	}

	return n % p.MaxIter
}

// IterateClassic runs z -> z^2 + c from zero, with the escape radius still
// taken from p.
func (p Params) IterateClassic(c complex128) int {
	m := transforms.Mandelbrot{}

	var z complex128
	n := 0
	for n < p.MaxIter && absSq(z) < p.radiusSq {
		z = m.Next(z, c)
		n++
	}

	return n % p.MaxIter
}

// IterateFrom dispatches on kind.
func (p Params) IterateFrom(kind Kind, sample complex128) int {
	if kind == Classic {
		return p.IterateClassic(sample)
	}
	return p.Iterate(sample)
}

func absSq(z complex128) float64 {
	re, im := real(z), imag(z)
	return re*re + im*im
}
