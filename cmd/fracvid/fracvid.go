package main

import (
	"context"
	"log"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/willbeason/fracpix/pkg/animation"
	"github.com/willbeason/fracpix/pkg/render"
)

func mainCmd() *cobra.Command {
	seq := animation.Default()
	dir := "fracpix"
	workers := runtime.NumCPU()

	cmd := &cobra.Command{
		Use:   "fracvid",
		Short: "Render a zooming Julia set animation as numbered PNG frames",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			seq.Logger = log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
			return seq.Run(dir, render.New(render.WithWorkers(workers)))
		},
	}

	f := cmd.Flags()
	f.IntVar(&seq.Frames, "frames", seq.Frames, "number of frames to render")
	f.StringVar(&dir, "dir", dir, "directory to create for the frames")
	f.IntVar(&workers, "workers", workers, "number of rendering goroutines per frame")

	return cmd
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
