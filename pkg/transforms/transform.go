package transforms

// A Transform iterates a passed point.
type Transform interface {
	Next(z complex128) complex128
}

// A ParameterTransform iterates a passed point with a per-point parameter,
// such as the sample point of a Mandelbrot render.
type ParameterTransform interface {
	Next(z complex128, c complex128) complex128
}

var (
	_ Transform          = Julia2{}
	_ ParameterTransform = Mandelbrot{}
)
