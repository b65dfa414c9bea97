package transforms

// Mandelbrot is the quadratic map z -> z^2 + c where c varies per point.
// C perturbs every point by the same amount and is usually zero.
type Mandelbrot struct {
	C complex128
}

func (m Mandelbrot) Next(z complex128, c complex128) complex128 {
	return z*z + c + m.C
}
