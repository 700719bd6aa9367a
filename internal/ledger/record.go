// Package ledger holds the normalized general-ledger data model and the
// pure functions that filter and aggregate it.
package ledger

import "github.com/shopspring/decimal"

// Placeholders used when a GL code is not present in the description lookup.
const (
	UnknownGL     = "Unknown GL"
	Uncategorized = "Uncategorized"
)

// Record is a single normalized recovery line from the GL dump.
type Record struct {
	GLCode        string          `json:"glCode" example:"4010"`                  // General-ledger account identifier
	GLDescription string          `json:"glDescription" example:"Travel Recovery"` // Display name resolved via the description lookup
	Category      string          `json:"category" example:"Travel"`              // Category resolved via the description lookup
	Order         string          `json:"order" example:"30102204"`               // Order/IO identifier the recovery is booked against
	Amount        decimal.Decimal `json:"amount" example:"1500.5"`                // Recovery amount
}

// Lookup resolves GL codes to display names and categories. It is built once
// per uploaded description file and never modified afterwards.
type Lookup struct {
	Names      map[string]string
	Categories map[string]string
}

// Name returns the display name for a GL code, falling back to UnknownGL.
func (l Lookup) Name(code string) string {
	if name, ok := l.Names[code]; ok {
		return name
	}
	return UnknownGL
}

// Category returns the category for a GL code, falling back to Uncategorized.
func (l Lookup) Category(code string) string {
	if category, ok := l.Categories[code]; ok {
		return category
	}
	return Uncategorized
}
