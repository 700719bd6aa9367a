// Package spreadsheet parses the uploaded tabular files into raw rows and
// builds the GL description lookup from them.
package spreadsheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("this endpoint only supports .xlsx and .csv files")
	ErrNoSheet           = errors.New("the uploaded workbook does not contain a sheet")
)

// Parse reads an uploaded file into rows of cells. For workbooks, only the
// first sheet is read. A file either parses completely or is rejected, there
// is no partial success.
func Parse(r io.Reader, filename string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return parseWorkbook(r)
	case ".csv":
		rows, err := csv.NewReader(r).ReadAll()
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filename, err)
		}
		return rows, nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

func parseWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoSheet
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	return rows, nil
}
