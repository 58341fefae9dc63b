package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseDimensions parses "<width>x<height>". Whitespace anywhere is ignored.
func ParseDimensions(s string) (width, height int, err error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidDimensions, s)
	}
	width, err = parseSize(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidDimensions, s)
	}
	height, err = parseSize(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidDimensions, s)
	}
	return width, height, nil
}

func parseSize(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
