package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/termplot-go/pkg/termplot/models"
)

// newWorkbook returns a workbook whose Sheet1 holds a header row and three
// data rows:
//
//	x  y
//	1  10
//	2  20
//	3  30
func newWorkbook(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })

	cells := map[string]interface{}{
		"A1": "x", "B1": "y",
		"A2": 1, "B2": 10,
		"A3": 2, "B3": 20.0,
		"A4": 3, "B4": 30,
	}
	for cell, v := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", cell, v))
	}
	return f
}

func TestParseRegion(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Region
	}{
		{"A1:C20", models.Region{R1: 1, C1: 1, R2: 20, C2: 3}},
		{"$B$2:$B$9", models.Region{R1: 2, C1: 2, R2: 9, C2: 2}},
		{"C5:A1", models.Region{R1: 1, C1: 1, R2: 5, C2: 3}},
		{"D4", models.Region{R1: 4, C1: 4, R2: 4, C2: 4}},
	}
	for _, tt := range tests {
		got, err := ParseRegion(tt.input)
		require.NoError(t, err, "ParseRegion(%q)", tt.input)
		assert.Equal(t, tt.expected, got, "ParseRegion(%q)", tt.input)
	}

	for _, bad := range []string{"", "A1:B2:C3", "1A:B2", "A1:"} {
		_, err := ParseRegion(bad)
		assert.ErrorIs(t, err, ErrInvalidRegion, "ParseRegion(%q)", bad)
	}
}

func TestDetectNumericRegion(t *testing.T) {
	rows := [][]string{
		{"name", "value"},
		{"a", "1"},
		{"b", "2.5"},
		{"", "3", "note"},
	}
	region, ok := DetectNumericRegion(rows)
	require.True(t, ok)
	assert.Equal(t, models.Region{R1: 2, C1: 2, R2: 4, C2: 2}, region)

	_, ok = DetectNumericRegion([][]string{{"a", "b"}, {}})
	assert.False(t, ok)
}

func TestReadWorkbook_DetectedRegion(t *testing.T) {
	f := newWorkbook(t)

	ds, err := ReadWorkbook(f, SheetOptions{})
	require.NoError(t, err)
	assertDataset(t, models.Dataset{
		Xs: []float64{1, 2, 3},
		Ys: [][]float64{{10, 20, 30}},
	}, ds)

	ds, err = ReadWorkbook(f, SheetOptions{Sheet: "Sheet1", XIsRow: true})
	require.NoError(t, err)
	assertDataset(t, models.Dataset{
		Xs: []float64{0, 1, 2},
		Ys: [][]float64{{1, 2, 3}, {10, 20, 30}},
	}, ds)
}

func TestReadWorkbook_Ranges(t *testing.T) {
	f := newWorkbook(t)
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "Data",
		RefersTo: "Sheet1!$B$3:$B$4",
	}))
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$A$3:$B$4",
		Scope:    "Sheet1",
	}))

	cases := []struct {
		name   string
		opts   SheetOptions
		expect models.Dataset
	}{
		{
			name:   "CellRange",
			opts:   SheetOptions{Range: "B2:B4", XIsRow: true},
			expect: models.Dataset{Xs: []float64{0, 1, 2}, Ys: [][]float64{{10, 20, 30}}},
		},
		{
			name:   "SheetQualified",
			opts:   SheetOptions{Range: "'Sheet1'!A2:A3", XIsRow: true},
			expect: models.Dataset{Xs: []float64{0, 1}, Ys: [][]float64{{1, 2}}},
		},
		{
			name:   "DefinedName",
			opts:   SheetOptions{Range: "data", XIsRow: true},
			expect: models.Dataset{Xs: []float64{0, 1}, Ys: [][]float64{{20, 30}}},
		},
		{
			name:   "PrintArea",
			opts:   SheetOptions{Sheet: "Sheet1", Range: "Print_Area"},
			expect: models.Dataset{Xs: []float64{2, 3}, Ys: [][]float64{{20, 30}}},
		},
		{
			name:   "HeaderRowSkipped",
			opts:   SheetOptions{Range: "A1:B2"},
			expect: models.Dataset{Xs: []float64{1}, Ys: [][]float64{{10}}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ds, err := ReadWorkbook(f, tc.opts)
			require.NoError(t, err)
			assertDataset(t, tc.expect, ds)
		})
	}
}

func TestReadWorkbook_Errors(t *testing.T) {
	f := newWorkbook(t)

	_, err := ReadWorkbook(f, SheetOptions{Range: "NoSuchName"})
	assert.ErrorIs(t, err, ErrInvalidRegion)

	_, err = ReadWorkbook(f, SheetOptions{Sheet: "Missing"})
	assert.Error(t, err)
}

func TestReadSheet(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "data.xlsx")
	require.NoError(t, newWorkbook(t).SaveAs(path))

	ds, err := ReadSheet(path, SheetOptions{})
	require.NoError(t, err)
	assertDataset(t, models.Dataset{
		Xs: []float64{1, 2, 3},
		Ys: [][]float64{{10, 20, 30}},
	}, ds)

	_, err = ReadSheet(filepath.Join(tmpDir, "missing.xlsx"), SheetOptions{})
	assert.ErrorIs(t, err, ErrFileNotFound)

	bogus := filepath.Join(tmpDir, "bogus.xlsx")
	require.NoError(t, os.WriteFile(bogus, []byte("1 2\n3 4\n"), 0644))
	_, err = ReadSheet(bogus, SheetOptions{})
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
