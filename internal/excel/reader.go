// Package excel reads the ERP's .xlsx exports into raw tables and extracts
// the metadata the filename conventions carry.
package excel

import (
	"errors"
	"fmt"
	"io"

	"salesdash/internal/dataset"

	"github.com/xuri/excelize/v2"
)

// ReadError wraps any failure to open or parse a source workbook. It is the
// only error class surfaced to users: one file failing never aborts sibling
// loads, and there is no retry — the remedy is picking another file.
type ReadError struct {
	File string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot read workbook %s: %v", e.File, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// IsReadError reports whether err is a source-read failure.
func IsReadError(err error) bool {
	var re *ReadError
	return errors.As(err, &re)
}

// ReadWorkbook opens an .xlsx file and returns its first sheet as a raw
// table: first row is the header, the rest are data rows.
func ReadWorkbook(path string) (*dataset.RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ReadError{File: path, Err: err}
	}
	defer f.Close()
	return firstSheet(f, path)
}

// ReadFrom parses workbook bytes from a stream (multipart uploads). The name
// is only used in error messages.
func ReadFrom(r io.Reader, name string) (*dataset.RawTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ReadError{File: name, Err: err}
	}
	defer f.Close()
	return firstSheet(f, name)
}

func firstSheet(f *excelize.File, name string) (*dataset.RawTable, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &ReadError{File: name, Err: errors.New("workbook has no sheets")}
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &ReadError{File: name, Err: err}
	}
	if len(rows) == 0 {
		return nil, &ReadError{File: name, Err: errors.New("sheet has no header row")}
	}
	return dataset.NewRawTable(rows[0], rows[1:]), nil
}
