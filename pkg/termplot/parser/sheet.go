package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strings"

	"github.com/ukaji3/termplot-go/pkg/termplot/models"
	"github.com/xuri/excelize/v2"
)

// SheetOptions selects what ReadSheet reads from a workbook.
type SheetOptions struct {
	// Sheet is the worksheet name. Empty means the first sheet.
	Sheet string
	// Range is a cell range, sheet-qualified range or defined name.
	// Empty means the bounding box of the numeric cells.
	Range string
	// XIsRow has the same meaning as for ReadText.
	XIsRow bool
}

// ReadSheet opens the workbook at path and reads it with ReadWorkbook.
func ReadSheet(path string, opts SheetOptions) (models.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Dataset{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return models.Dataset{}, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	defer f.Close()

	return ReadWorkbook(f, opts)
}

// ReadWorkbook reads one rectangular block of cells from f. Each row of the
// block is a data row, laid out as for ReadText. Rows of the block without a
// single number are skipped, and any other non-numeric cell reads as NaN.
func ReadWorkbook(f *excelize.File, opts SheetOptions) (models.Dataset, error) {
	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return models.Dataset{}, fmt.Errorf("%w: workbook has no sheets", ErrInvalidFormat)
		}
		sheet = sheets[0]
	}

	var (
		region models.Region
		found  = true
	)
	if opts.Range != "" {
		var err error
		if sheet, region, err = ResolveRegion(f, sheet, opts.Range); err != nil {
			return models.Dataset{}, err
		}
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Dataset{}, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	if opts.Range == "" {
		region, found = DetectNumericRegion(rows)
	}
	if !found {
		return fromRows(nil, opts.XIsRow), nil
	}

	return fromRows(extractRegion(rows, region), opts.XIsRow), nil
}

// extractRegion converts the cells of region to numbers, dropping rows that
// hold no number at all.
func extractRegion(rows [][]string, region models.Region) [][]float64 {
	var out [][]float64
	for r := region.R1; r <= region.R2; r++ {
		var row []string
		if r-1 < len(rows) {
			row = rows[r-1]
		}

		values := make([]float64, region.Cols())
		hasData := false
		for c := region.C1; c <= region.C2; c++ {
			v := math.NaN()
			if c-1 < len(row) {
				v = parseNumber(strings.TrimSpace(row[c-1]))
			}
			if !math.IsNaN(v) {
				hasData = true
			}
			values[c-region.C1] = v
		}
		if hasData {
			out = append(out, values)
		}
	}
	return out
}

func isNumber(s string) bool {
	return !math.IsNaN(parseNumber(strings.TrimSpace(s)))
}
