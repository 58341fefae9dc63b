// Package canvas provides the fixed-size character grid a plot is drawn into.
package canvas

import (
	"bytes"
	"io"
)

// Blank is the byte every cell holds before anything is drawn.
const Blank = ' '

// Canvas is a width×height grid of single-byte characters.
// Row 0 is the first line of the serialized text.
type Canvas struct {
	width  int
	height int
	cells  []byte
}

// New returns a blank canvas. Non-positive dimensions yield an empty canvas
// on which every cell lookup fails.
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := bytes.Repeat([]byte{Blank}, width*height)
	return &Canvas{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

// InBounds reports whether (row, col) addresses a cell.
func (c *Canvas) InBounds(row, col int) bool {
	return row >= 0 && row < c.height && col >= 0 && col < c.width
}

// Cell returns an assignable reference to the cell at (row, col).
// It returns false if either index is out of range.
func (c *Canvas) Cell(row, col int) (*byte, bool) {
	if !c.InBounds(row, col) {
		return nil, false
	}
	return &c.cells[c.index(row, col)], true
}

// Get returns the character at (row, col).
func (c *Canvas) Get(row, col int) (byte, bool) {
	p, ok := c.Cell(row, col)
	if !ok {
		return 0, false
	}
	return *p, true
}

// Set writes ch at (row, col) and reports whether the cell exists.
func (c *Canvas) Set(row, col int, ch byte) bool {
	p, ok := c.Cell(row, col)
	if ok {
		*p = ch
	}
	return ok
}

// Lines returns one string per row, top to bottom.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	for row := range lines {
		lines[row] = string(c.row(row))
	}
	return lines
}

// String joins the rows with newlines. There is no trailing newline.
func (c *Canvas) String() string {
	var buf bytes.Buffer
	for row := 0; row < c.height; row++ {
		if row > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(c.row(row))
	}
	return buf.String()
}

// WriteTo writes every row followed by a newline.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	var total int64
	line := make([]byte, 0, c.width+1)
	for row := 0; row < c.height; row++ {
		line = append(line[:0], c.row(row)...)
		line = append(line, '\n')
		n, err := w.Write(line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// index maps (row, col) to a row-major offset.
func (c *Canvas) index(row, col int) int {
	return row*c.width + col
}

func (c *Canvas) row(row int) []byte {
	start := c.index(row, 0)
	return c.cells[start : start+c.width]
}
