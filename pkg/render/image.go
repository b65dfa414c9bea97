package render

import (
	"image"
	"image/color"

	"github.com/willbeason/fracpix/pkg/palette"
)

// A Grid holds one iteration count per pixel, row-major.
type Grid struct {
	Width, Height int
	Counts        []int
}

func newGrid(width, height int) Grid {
	return Grid{
		Width:  width,
		Height: height,
		Counts: make([]int, width*height),
	}
}

func (g Grid) At(x, y int) int {
	return g.Counts[x+y*g.Width]
}

// Image pairs an iteration Grid with the Palette used to color it. Each
// pixel's color is Palette[count mod palette.Size].
type Image struct {
	Grid    Grid
	Palette palette.Palette
}

var _ image.PalettedImage = (*Image)(nil)

// ColorIndexAt returns the palette index of pixel (x, y).
func (img *Image) ColorIndexAt(x, y int) uint8 {
	return uint8(img.Grid.At(x, y) % palette.Size)
}

func (img *Image) ColorModel() color.Model {
	return img.Palette.Color()
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Grid.Width, img.Grid.Height)
}

func (img *Image) At(x, y int) color.Color {
	if !image.Pt(x, y).In(img.Bounds()) {
		return color.RGBA{}
	}
	return img.Palette[img.ColorIndexAt(x, y)]
}

// Paletted converts img to an 8-bit indexed image sharing img's palette.
func (img *Image) Paletted() *image.Paletted {
	p := image.NewPaletted(img.Bounds(), img.Palette.Color())
	for i, n := range img.Grid.Counts {
		p.Pix[i] = uint8(n % palette.Size)
	}
	return p
}
