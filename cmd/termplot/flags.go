package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/ukaji3/termplot-go/pkg/termplot/parser"
)

// dimensionsEnv overrides the default plot size when -d is not given.
const dimensionsEnv = "TERMPLOT_DIMENSIONS"

// terminalSize reports the size of the terminal on stdout.
var terminalSize = func() (int, int, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, errors.New("stdout is not a terminal")
	}
	return term.GetSize(fd)
}

// dimensionsValue is a pflag.Value holding "<width>x<height>" or "auto".
type dimensionsValue struct {
	width  int
	height int
}

var _ pflag.Value = (*dimensionsValue)(nil)

func (d *dimensionsValue) String() string {
	return fmt.Sprintf("%dx%d", d.width, d.height)
}

// Set parses s. "auto" takes the terminal size, keeping the last row free
// for the shell prompt.
func (d *dimensionsValue) Set(s string) error {
	if strings.EqualFold(strings.TrimSpace(s), "auto") {
		w, h, err := terminalSize()
		if err != nil {
			return fmt.Errorf("auto dimensions: %w", err)
		}
		d.width, d.height = w, h-1
		return nil
	}

	w, h, err := parser.ParseDimensions(s)
	if err != nil {
		return err
	}
	d.width, d.height = w, h
	return nil
}

func (d *dimensionsValue) Type() string {
	return "WxH"
}
