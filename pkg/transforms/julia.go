package transforms

// Julia2 is the quadratic map z -> z^2 + C with C fixed for a whole image.
type Julia2 struct {
	C complex128
}

func (j Julia2) Next(z complex128) complex128 {
	return z*z + j.C
}
