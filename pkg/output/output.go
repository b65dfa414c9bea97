// Package output names and writes rendered images.
package output

import (
	"fmt"
	"image/png"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/willbeason/fracpix/pkg/render"
)

// FileName returns "<kind>_<re>_i<im>.png" for a single render with
// constant c.
func FileName(kind string, c complex128) string {
	return fmt.Sprintf("%s_%s_i%s.png", kind, FormatFloat(real(c)), FormatFloat(imag(c)))
}

// FrameName returns the file name of frame n of an animation.
func FrameName(n int) string {
	return fmt.Sprintf("pic%05d.png", n)
}

// FormatFloat writes f as the shortest decimal that reads back to f, always
// with a fractional part or exponent, e.g. "0.0", "-0.3819", "1e-05".
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// WritePNG encodes img as an 8-bit paletted PNG.
func WritePNG(w io.Writer, img *render.Image) error {
	return png.Encode(w, img.Paletted())
}

// Save writes img to path as a paletted PNG.
func Save(path string, img *render.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = WritePNG(f, img)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return f.Close()
}
