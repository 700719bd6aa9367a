package ledger

import (
	"strings"

	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// Filter narrows a set of Records before aggregation. Each screen of the
// frontend binds its own Filter from query parameters, so there is no shared
// filter state between screens.
type Filter struct {
	Categories []string `form:"categories"` // Categories to include. Empty means all.
	Codes      []string `form:"codes"`      // GL codes to include, glob patterns allowed. Empty means all.
	Order      string   `form:"order"`      // Case-sensitive substring match on the Order field.
}

// Apply returns the Records that pass every criterion of the filter.
// Records keep their input order.
func (f Filter) Apply(records []Record) []Record {
	matched := make([]Record, 0, len(records))

	for _, record := range records {
		if !f.matches(record) {
			continue
		}
		matched = append(matched, record)
	}

	return matched
}

func (f Filter) matches(record Record) bool {
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, record.Category) {
		return false
	}

	if len(f.Codes) > 0 && !matchesAny(f.Codes, record.GLCode) {
		return false
	}

	if f.Order != "" && !strings.Contains(record.Order, f.Order) {
		return false
	}

	return true
}

// matchesAny checks the GL code against the selected patterns. A plain code
// without wildcards is an exact match.
func matchesAny(patterns []string, code string) bool {
	for _, pattern := range patterns {
		if glob.Glob(pattern, code) {
			return true
		}
	}

	return false
}
