// Package render colors every pixel of a viewport by its escape time.
package render

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/willbeason/fracpix/pkg/escape"
	"github.com/willbeason/fracpix/pkg/palette"
	"github.com/willbeason/fracpix/pkg/viewport"
)

// Renderer fills iteration grids in parallel, one row at a time.
type Renderer struct {
	workers int
}

type Option func(*Renderer)

// WithWorkers sets the number of goroutines filling rows. Values below 1
// are treated as 1.
func WithWorkers(n int) Option {
	return func(r *Renderer) {
		r.workers = max(n, 1)
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) Workers() int {
	return r.workers
}

// Render draws the Julia form of the map for every pixel of vp.
func (r *Renderer) Render(vp viewport.Viewport, params escape.Params, paletteSpec string) (*Image, error) {
	return r.RenderKind(vp, params, escape.Julia, paletteSpec)
}

// RenderKind builds the palette named by paletteSpec and fills a grid with
// the escape time of every pixel of vp. Nothing is computed if the palette
// is invalid.
func (r *Renderer) RenderKind(vp viewport.Viewport, params escape.Params, kind escape.Kind, paletteSpec string) (*Image, error) {
	p, err := palette.Build(paletteSpec)
	if err != nil {
		return nil, fmt.Errorf("building palette: %w", err)
	}

	return &Image{
		Grid:    r.Fill(vp, params, kind),
		Palette: p,
	}, nil
}

// Fill computes the iteration grid for vp. Each worker takes whole rows and
// writes only the cells of those rows, so the result does not depend on the
// number of workers.
func (r *Renderer) Fill(vp viewport.Viewport, params escape.Params, kind escape.Kind) Grid {
	grid := newGrid(vp.Width, vp.Height)

	yChannel := make(chan int)
	go func() {
		for y := 0; y < vp.Height; y++ {
			yChannel <- y
		}
		close(yChannel)
	}()

	parallel := min(r.workers, vp.Height)

	ywg := sync.WaitGroup{}
	ywg.Add(parallel)
	for i := 0; i < parallel; i++ {
		go func() {
			defer ywg.Done()
			for y := range yChannel {
				row := grid.Counts[y*vp.Width : (y+1)*vp.Width]
				for x := range row {
					row[x] = params.IterateFrom(kind, vp.Map(x, y))
				}
			}
		}()
	}
	ywg.Wait()

	return grid
}
