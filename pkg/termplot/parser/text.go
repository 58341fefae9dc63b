package parser

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/ukaji3/termplot-go/pkg/termplot/models"
)

// ReadText reads one data row per non-blank line. Fields are separated by
// whitespace or commas, and '#' starts a comment.
//
// With xIsRow the x value of a row is its 0-based index and field k belongs
// to series k. Otherwise the first field is x and the remaining fields are
// the series. Fields that are not numbers read as NaN.
func ReadText(r io.Reader, xIsRow bool) (models.Dataset, error) {
	var rows [][]float64

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return unicode.IsSpace(r) || r == ','
		})
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for i, field := range fields {
			row[i] = parseNumber(field)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return models.Dataset{}, fmt.Errorf("read input: %w", err)
	}

	return fromRows(rows, xIsRow), nil
}

// fromRows arranges numeric rows into a dataset. Short rows are padded with
// NaN so every series stays aligned with the x values.
func fromRows(rows [][]float64, xIsRow bool) models.Dataset {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	first := 0
	if !xIsRow {
		first = 1
	}
	nSeries := width - first
	if nSeries < 1 {
		nSeries = 1
	}

	ds := models.Dataset{
		Xs: make([]float64, len(rows)),
		Ys: make([][]float64, nSeries),
	}
	for k := range ds.Ys {
		ds.Ys[k] = make([]float64, len(rows))
	}

	for i, row := range rows {
		if xIsRow {
			ds.Xs[i] = float64(i)
		} else {
			ds.Xs[i] = row[0]
		}

		// a lone x value is plotted against its row number
		if !xIsRow && len(row) == 1 {
			ds.Ys[0][i] = float64(i)
			for k := 1; k < nSeries; k++ {
				ds.Ys[k][i] = math.NaN()
			}
			continue
		}

		for k := 0; k < nSeries; k++ {
			if j := first + k; j < len(row) {
				ds.Ys[k][i] = row[j]
			} else {
				ds.Ys[k][i] = math.NaN()
			}
		}
	}
	return ds
}

// parseNumber parses s as a float64, returning NaN when s is not a number.
func parseNumber(s string) float64 {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return math.NaN()
}
