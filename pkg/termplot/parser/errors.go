// Package parser reads plot input from text streams and xlsx workbooks.
package parser

import "errors"

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrInvalidDimensions indicates a dimensions string not of the form <width>x<height>.
var ErrInvalidDimensions = errors.New("invalid dimensions format, use <width>x<height>, e.g. 72x30")

// ErrInvalidRegion indicates a cell range or defined name that cannot be resolved.
var ErrInvalidRegion = errors.New("invalid cell range")
