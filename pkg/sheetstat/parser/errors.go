package parser

import "errors"

var (
	// ErrFileNotFound indicates the input file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrNoData indicates the input has no rows beyond the header.
	ErrNoData = errors.New("no data rows after header")

	// ErrSheetNotFound indicates the requested workbook sheet does not exist.
	ErrSheetNotFound = errors.New("sheet not found")

	// ErrInvalidEncoding indicates delimited text that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("input is not valid UTF-8 text")

	// ErrInvalidSeparator indicates a separator that is not a single character.
	ErrInvalidSeparator = errors.New("separator must be a single character")
)
