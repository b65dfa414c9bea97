package animation

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/willbeason/fracpix/pkg/palette"
	"github.com/willbeason/fracpix/pkg/render"
	"github.com/willbeason/fracpix/pkg/viewport"
)

func small() Sequence {
	s := Default()
	s.Frames = 3
	s.Width = 12
	s.Height = 20
	return s
}

func TestDefault(t *testing.T) {
	s := Default()
	if s.Frames != 3600 || s.Width != 1080 || s.Height != 1920 || s.Palette != "GnBu" {
		t.Errorf("unexpected defaults: %+v", s)
	}
}

func TestZooms(t *testing.T) {
	zooms := Default().Zooms()
	if len(zooms) != 3600 {
		t.Fatalf("got %d zooms", len(zooms))
	}

	want := 0.01
	for i, z := range zooms {
		want += 0.277775
		if z != want {
			t.Fatalf("zoom %d = %v, want %v", i, z, want)
		}
		if i > 0 && z <= zooms[i-1] {
			t.Fatalf("zoom %d not increasing", i)
		}
	}
}

func TestRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fracpix")

	var logs bytes.Buffer
	s := small()
	s.Logger = log.New(&logs, "", 0)

	err := s.Run(dir, render.New(render.WithWorkers(3)))
	if err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d files, want 3", len(entries))
	}
	if !strings.Contains(logs.String(), "Done saving 3 images") {
		t.Errorf("log = %q", logs.String())
	}

	for i, name := range []string{"pic00000.png", "pic00001.png", "pic00002.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(f)
		_ = f.Close()
		if err != nil {
			t.Fatal(err)
		}
		if img.Bounds() != image.Rect(0, 0, 12, 20) {
			t.Errorf("frame %d bounds = %v", i, img.Bounds())
		}
	}
}

func TestRun_ExistingDir(t *testing.T) {
	err := small().Run(t.TempDir(), render.New())
	if !errors.Is(err, os.ErrExist) {
		t.Errorf("error = %v, want %v", err, os.ErrExist)
	}
}

func TestRun_InvalidPalette(t *testing.T) {
	s := small()
	s.Palette = "GG0000"

	dir := filepath.Join(t.TempDir(), "out")
	err := s.Run(dir, render.New())
	if !errors.Is(err, palette.ErrInvalidPaletteSpec) {
		t.Errorf("error = %v, want %v", err, palette.ErrInvalidPaletteSpec)
	}
	if _, err := os.Stat(dir); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("directory was created: %v", err)
	}
}

func TestRun_InvalidZoom(t *testing.T) {
	s := small()
	s.StartZoom = -10

	dir := filepath.Join(t.TempDir(), "out")
	err := s.Run(dir, render.New())
	if !errors.Is(err, viewport.ErrInvalidZoom) {
		t.Errorf("error = %v, want %v", err, viewport.ErrInvalidZoom)
	}
	if _, err := os.Stat(dir); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("directory was created: %v", err)
	}
}

func TestRun_NegativeFrames(t *testing.T) {
	s := small()
	s.Frames = -1

	err := s.Run(filepath.Join(t.TempDir(), "out"), render.New())
	if !errors.Is(err, ErrInvalidFrames) {
		t.Errorf("error = %v, want %v", err, ErrInvalidFrames)
	}
}
