// Package animation renders a zoom sequence into numbered frames.
package animation

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/willbeason/fracpix/pkg/escape"
	"github.com/willbeason/fracpix/pkg/output"
	"github.com/willbeason/fracpix/pkg/palette"
	"github.com/willbeason/fracpix/pkg/render"
	"github.com/willbeason/fracpix/pkg/viewport"
)

var ErrInvalidFrames = errors.New("frame count must not be negative")

// DirMode is the permission of the frame directory.
const DirMode os.FileMode = 0o744

// A Sequence zooms into a fixed point of a Julia set, one frame at a time.
type Sequence struct {
	Frames int

	Width, Height int
	Shift         complex128

	// StartZoom is advanced by ZoomStep before every frame, so frame 0 is
	// drawn at StartZoom+ZoomStep.
	StartZoom float64
	ZoomStep  float64

	C       complex128
	MaxIter int
	Palette string

	// Logger reports progress. Nil is silent.
	Logger *log.Logger
}

// Default is a 3600-frame portrait zoom into the c = 0.285+0.01i Julia set.
func Default() Sequence {
	return Sequence{
		Frames:    3600,
		Width:     1080,
		Height:    1920,
		Shift:     complex(-0.4775162185, -0.1897497681),
		StartZoom: 0.01,
		ZoomStep:  0.277775,
		C:         complex(0.285, 0.01),
		MaxIter:   256,
		Palette:   "GnBu",
	}
}

// Zooms returns the zoom of every frame. The step is accumulated rather than
// multiplied so the values match a running sum.
func (s Sequence) Zooms() []float64 {
	zooms := make([]float64, max(s.Frames, 0))
	zoom := s.StartZoom
	for i := range zooms {
		zoom += s.ZoomStep
		zooms[i] = zoom
	}
	return zooms
}

// Run renders every frame of s into dir, which must not exist yet. Frames
// are rendered one after another so only one grid is held at a time; each
// frame is parallelized by r.
func (s Sequence) Run(dir string, r *render.Renderer) error {
	if s.Frames < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidFrames, s.Frames)
	}

	params, err := escape.NewParams(s.C, s.MaxIter)
	if err != nil {
		return err
	}

	// Fail before creating anything if the sequence cannot be drawn.
	if _, err := palette.Build(s.Palette); err != nil {
		return err
	}

	zooms := s.Zooms()
	viewports := make([]viewport.Viewport, len(zooms))
	for n, zoom := range zooms {
		viewports[n], err = viewport.New(s.Width, s.Height, s.Shift, zoom)
		if err != nil {
			return fmt.Errorf("frame %d: %w", n, err)
		}
	}

	err = os.Mkdir(dir, DirMode)
	if err != nil {
		return err
	}
	s.logf("Created dir - %s", dir)

	for n, vp := range viewports {
		img, err := r.Render(vp, params, s.Palette)
		if err != nil {
			return fmt.Errorf("frame %d: %w", n, err)
		}

		path := filepath.Join(dir, output.FrameName(n))
		err = output.Save(path, img)
		if err != nil {
			return fmt.Errorf("frame %d: %w", n, err)
		}

		s.logf("frame %d/%d zoom %v: %s", n+1, len(viewports), vp.Zoom, path)
	}

	s.logf("Done saving %d images", len(viewports))
	return nil
}

func (s Sequence) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}
