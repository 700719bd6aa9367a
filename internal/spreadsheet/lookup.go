package spreadsheet

import "github.com/gl-recovery/backend/internal/ledger"

// BuildLookup converts the GL description table into the code lookup.
// Column 0 holds the GL code, column 1 the display name and column 2 the
// category. The first row is a header and skipped. When the table has fewer
// than three columns the category mapping stays empty, so every code later
// resolves to Uncategorized.
//
// Duplicate codes are not an error: the last occurrence wins.
func BuildLookup(rows [][]string) ledger.Lookup {
	lookup := ledger.Lookup{
		Names:      make(map[string]string),
		Categories: make(map[string]string),
	}

	if len(rows) == 0 {
		return lookup
	}

	hasCategories := len(rows[0]) >= 3

	for _, row := range rows[1:] {
		if len(row) < 2 || row[0] == "" {
			continue
		}

		lookup.Names[row[0]] = row[1]

		if hasCategories && len(row) >= 3 {
			lookup.Categories[row[0]] = row[2]
		}
	}

	return lookup
}
