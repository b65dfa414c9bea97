// Package flags holds the pflag value types shared by the commands, and the
// rewriting that lets two-value flags such as "--shift -0.4 0.1" pass through
// pflag.
package flags

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

var ErrMissingArgument = errors.New("missing argument")

// Size is a "<width>x<height>" flag value.
type Size struct {
	Width, Height int
}

var _ pflag.Value = (*Size)(nil)

func (s *Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

func (s *Size) Set(v string) error {
	w, h, ok := strings.Cut(v, "x")
	if !ok {
		return fmt.Errorf("size %q is not <width>x<height>", v)
	}

	width, err := strconv.Atoi(w)
	if err != nil {
		return fmt.Errorf("size %q: width: %w", v, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return fmt.Errorf("size %q: height: %w", v, err)
	}

	s.Width, s.Height = width, height
	return nil
}

func (s *Size) Type() string {
	return "size"
}

// Complex is a "<real>,<imag>" flag value.
type Complex complex128

var _ pflag.Value = (*Complex)(nil)

func (c *Complex) String() string {
	return strconv.FormatFloat(real(*c), 'g', -1, 64) + "," + strconv.FormatFloat(imag(*c), 'g', -1, 64)
}

func (c *Complex) Set(v string) error {
	re, im, ok := strings.Cut(v, ",")
	if !ok {
		return fmt.Errorf("%q is not <real>,<imag>", v)
	}

	r, err := strconv.ParseFloat(strings.TrimSpace(re), 64)
	if err != nil {
		return fmt.Errorf("real part of %q: %w", v, err)
	}
	i, err := strconv.ParseFloat(strings.TrimSpace(im), 64)
	if err != nil {
		return fmt.Errorf("imaginary part of %q: %w", v, err)
	}

	*c = Complex(complex(r, i))
	return nil
}

func (c *Complex) Type() string {
	return "complex"
}

// JoinValues rewrites "--name v" into "--name=v" for every flag in single,
// and "--name a b" into "--name=a,b" for every flag in pairs, so values that
// start with "-" are not mistaken for flags. Arguments after "--" are left
// alone.
func JoinValues(args []string, single, pairs []string) ([]string, error) {
	arity := make(map[string]int, len(single)+len(pairs))
	for _, name := range single {
		arity["--"+name] = 1
	}
	for _, name := range pairs {
		arity["--"+name] = 2
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}

		n, ok := arity[arg]
		if !ok {
			out = append(out, arg)
			continue
		}
		if i+n >= len(args) {
			return nil, fmt.Errorf("%w: %s expects %d value(s)", ErrMissingArgument, arg, n)
		}

		out = append(out, arg+"="+strings.Join(args[i+1:i+1+n], ","))
		i += n
	}

	return out, nil
}
