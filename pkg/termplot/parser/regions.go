package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/termplot-go/pkg/termplot/models"
	"github.com/xuri/excelize/v2"
)

// ParseRegion parses a range such as "A1:C20" or "$B$2:$B$9". A single cell
// yields a one-cell region. Corners may be given in any order.
func ParseRegion(ref string) (models.Region, error) {
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) > 2 || parts[0] == "" {
		return models.Region{}, fmt.Errorf("%w: %q", ErrInvalidRegion, ref)
	}
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Region{}, fmt.Errorf("%w: %q: %v", ErrInvalidRegion, ref, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.Region{}, fmt.Errorf("%w: %q: %v", ErrInvalidRegion, ref, err)
	}

	return models.Region{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, nil
}

// ResolveRegion turns ref into a sheet and region. ref is either a range,
// a sheet-qualified range such as 'Data'!$A$1:$B$9, or a defined name
// visible from sheet. Built-in names may omit their "_xlnm." prefix, so
// "Print_Area" finds the sheet's print area.
func ResolveRegion(f *excelize.File, sheet, ref string) (string, models.Region, error) {
	if strings.Contains(ref, "!") {
		return parseReference(ref, sheet)
	}
	if region, err := ParseRegion(ref); err == nil {
		return sheet, region, nil
	}

	for _, dn := range f.GetDefinedName() {
		name := strings.TrimPrefix(dn.Name, "_xlnm.")
		if !strings.EqualFold(name, ref) && !strings.EqualFold(dn.Name, ref) {
			continue
		}
		if dn.Scope != "" && dn.Scope != "Workbook" && dn.Scope != sheet {
			continue
		}
		return parseReference(dn.RefersTo, sheet)
	}
	return "", models.Region{}, fmt.Errorf("%w: no range or defined name %q", ErrInvalidRegion, ref)
}

// parseReference parses 'Sheet Name'!$A$1:$D$10. Only the first area of a
// comma-separated list is used. A reference without a sheet keeps sheet.
func parseReference(ref, sheet string) (string, models.Region, error) {
	part := strings.TrimSpace(strings.Split(ref, ",")[0])
	part = strings.TrimPrefix(part, "=")

	rangeStr := part
	if idx := strings.LastIndex(part, "!"); idx >= 0 {
		sheet = strings.Trim(part[:idx], "'")
		rangeStr = part[idx+1:]
	}

	region, err := ParseRegion(rangeStr)
	if err != nil {
		return "", models.Region{}, err
	}
	return sheet, region, nil
}

// DetectNumericRegion returns the bounding box of the cells of rows that
// parse as numbers. Header text around a block of numbers is left out.
// It returns false when no cell is numeric.
func DetectNumericRegion(rows [][]string) (models.Region, bool) {
	minRow, maxRow, minCol, maxCol := findNumericBounds(rows)
	if minRow < 0 {
		return models.Region{}, false
	}
	return models.Region{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true
}

// findNumericBounds finds the 0-based bounding box of numeric cells.
func findNumericBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if !isNumber(cell) {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
