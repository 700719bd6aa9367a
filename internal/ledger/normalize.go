package ledger

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var ErrEmptyTable = errors.New("the uploaded sheet contains no rows")

// Result is the outcome of normalizing a GL dump.
type Result struct {
	Records     []Record
	DroppedRows int // Rows excluded because their amount was not numeric
}

// Normalize maps the positional dump rows to Records. The first row is
// treated as a header and skipped. Rows whose amount cell cannot be parsed
// as a number are dropped; they are counted so that the data-quality gap is
// visible, but they never become an error.
func Normalize(rows [][]string, layout ColumnLayout, lookup Lookup) (Result, error) {
	if len(rows) == 0 {
		return Result{}, ErrEmptyTable
	}

	if err := layout.Validate(len(rows[0])); err != nil {
		return Result{}, err
	}

	result := Result{
		Records: make([]Record, 0, len(rows)-1),
	}

	for _, row := range rows[1:] {
		amount, err := decimal.NewFromString(strings.TrimSpace(cell(row, layout.Amount)))
		if err != nil {
			result.DroppedRows++
			continue
		}

		code := cell(row, layout.GLCode)
		result.Records = append(result.Records, Record{
			GLCode:        code,
			GLDescription: lookup.Name(code),
			Category:      lookup.Category(code),
			Order:         cell(row, layout.Order),
			Amount:        amount,
		})
	}

	if result.DroppedRows > 0 {
		log.Warn().
			Int("dropped", result.DroppedRows).
			Int("kept", len(result.Records)).
			Msg("dropped rows with non-numeric amounts")
	}

	return result, nil
}

// cell returns the value at idx. Spreadsheet rows can be shorter than the
// header when trailing cells are empty, so missing cells read as "".
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
