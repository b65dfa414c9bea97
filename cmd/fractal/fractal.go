package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/willbeason/fracpix/pkg/escape"
	"github.com/willbeason/fracpix/pkg/flags"
	"github.com/willbeason/fracpix/pkg/output"
	"github.com/willbeason/fracpix/pkg/render"
	"github.com/willbeason/fracpix/pkg/viewport"
)

const (
	Julia      = "julia"
	Mandelbrot = "mandelbrot"
)

var (
	// Flags taking one value and flags taking two, for flags.JoinValues.
	singleValueFlags = []string{"size", "zoom", "cmap", "maxiter", "workers", "out"}
	pairValueFlags   = []string{"shift", "const"}
)

type options struct {
	size    flags.Size
	shift   flags.Complex
	zoom    float64
	c       flags.Complex
	cmap    string
	maxIter int
	workers int
	classic bool
	out     string
}

func mainCmd() *cobra.Command {
	opts := &options{
		size: flags.Size{Width: 1920, Height: 1080},
		// (phi - 2) + (phi - 1)i
		c: flags.Complex(complex(-0.3819, 0.6180)),
	}

	cmd := &cobra.Command{
		Use:       "fractal <julia|mandelbrot>",
		Short:     "Render an escape-time fractal to a PNG",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{Julia, Mandelbrot},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCmd(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.Var(&opts.size, "size", "size of image as <width>x<height>")
	f.Var(&opts.shift, "shift", "shift the origin by <real> <imag>")
	f.Float64Var(&opts.zoom, "zoom", 1, "zoom amount into image")
	f.Var(&opts.c, "const", "constant used for the quadratic function, <real> <imag>")
	f.StringVar(&opts.cmap, "cmap", "viridis", "color palette name, or hex colors like ff0000_0000ff")
	f.IntVar(&opts.maxIter, "maxiter", 256, "maximum iterations per pixel")
	f.IntVar(&opts.workers, "workers", runtime.NumCPU(), "number of rendering goroutines")
	f.BoolVar(&opts.classic, "classic", false, "render the textbook Mandelbrot set (mandelbrot only)")
	f.StringVar(&opts.out, "out", ".", "directory to write the image to")

	return cmd
}

func runCmd(cmd *cobra.Command, args []string, opts *options) error {
	fractype := args[0]

	kind := escape.Julia
	if opts.classic {
		if fractype != Mandelbrot {
			return errors.New("--classic only applies to mandelbrot")
		}
		kind = escape.Classic
	}

	vp, err := viewport.New(opts.size.Width, opts.size.Height, complex128(opts.shift), opts.zoom)
	if err != nil {
		return err
	}

	params, err := escape.NewParams(complex128(opts.c), opts.maxIter)
	if err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	img, err := render.New(render.WithWorkers(opts.workers)).RenderKind(vp, params, kind, opts.cmap)
	if err != nil {
		return err
	}

	path := filepath.Join(opts.out, output.FileName(fractype, params.C))
	err = output.Save(path, img)
	if err != nil {
		return err
	}

	cmd.Println("Saved", path)
	return nil
}

func main() {
	ctx := context.Background()

	cmd := mainCmd()
	args, err := flags.JoinValues(os.Args[1:], singleValueFlags, pairValueFlags)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		_ = cmd.Usage()
		os.Exit(1)
	}
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
