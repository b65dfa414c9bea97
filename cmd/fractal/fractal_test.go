package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/willbeason/fracpix/pkg/flags"
	"github.com/willbeason/fracpix/pkg/palette"
	"github.com/willbeason/fracpix/pkg/viewport"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()

	joined, err := flags.JoinValues(args, singleValueFlags, pairValueFlags)
	if err != nil {
		return err
	}

	cmd := mainCmd()
	cmd.SetArgs(joined)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func TestJulia(t *testing.T) {
	dir := t.TempDir()
	err := execute(t, "julia", "--size", "40x30", "--shift", "-0.1", "0.2", "--zoom", "2", "--out", dir)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dir, "julia_-0.3819_i0.618.png")); err != nil {
		t.Error(err)
	}
}

func TestMandelbrotClassic(t *testing.T) {
	dir := t.TempDir()
	err := execute(t, "mandelbrot", "--classic", "--size", "30x20", "--const", "1", "0", "--cmap", "000000_ffffff", "--out", dir)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dir, "mandelbrot_1.0_i0.0.png")); err != nil {
		t.Error(err)
	}
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"bad palette", []string{"julia", "--size", "8x8", "--cmap", "GG0000", "--out", dir}, palette.ErrInvalidPaletteSpec},
		{"zero zoom", []string{"julia", "--zoom", "0", "--out", dir}, viewport.ErrInvalidZoom},
		{"bad size", []string{"julia", "--size", "0x10", "--out", dir}, viewport.ErrInvalidSize},
		{"missing argument", []string{"julia", "--const", "1"}, flags.ErrMissingArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execute(t, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestInvalidUsage(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"sierpinski"},
		{"julia", "mandelbrot"},
		{"julia", "--classic"},
	} {
		if err := execute(t, args...); err == nil {
			t.Errorf("%q: expected an error", args)
		}
	}
}
