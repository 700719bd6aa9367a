package ledger

import (
	"errors"
	"fmt"
)

var ErrTooFewColumns = errors.New("the uploaded sheet has fewer columns than the column layout requires")

// ColumnLayout names the zero-based column indexes of the semantic fields
// in the GL dump. The dump carries no usable header, so fields are read by
// absolute position.
type ColumnLayout struct {
	GLCode int
	Order  int
	Amount int
}

// DefaultLayout is the column layout of the standard GL dump export.
func DefaultLayout() ColumnLayout {
	return ColumnLayout{
		GLCode: 1,
		Order:  6,
		Amount: 12,
	}
}

// Validate checks that a sheet of the given width contains every column the
// layout refers to. It is called once per upload so that a truncated sheet
// fails with a clear error instead of producing empty fields later.
func (l ColumnLayout) Validate(width int) error {
	required := l.GLCode
	for _, idx := range []int{l.Order, l.Amount} {
		if idx > required {
			required = idx
		}
	}

	if width <= required {
		return fmt.Errorf("%w: need at least %d columns, got %d", ErrTooFewColumns, required+1, width)
	}

	return nil
}
