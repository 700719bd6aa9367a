package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// GLSummary is one aggregate row of the "by GL code" report.
type GLSummary struct {
	GLCode        string          `json:"glCode" example:"4010"`
	GLDescription string          `json:"glDescription" example:"Travel Recovery"`
	Category      string          `json:"category" example:"Travel"`
	TotalAmount   decimal.Decimal `json:"totalAmount" example:"1500.5"`
	Records       int             `json:"records" example:"1"`
}

// OrderSummary is one aggregate row of the "by Order/IO" report.
type OrderSummary struct {
	Order       string          `json:"order" example:"30102204"`
	TotalAmount decimal.Decimal `json:"totalAmount" example:"1500.5"`
	GLCodes     int             `json:"glCodes" example:"1"` // Distinct GL codes touched by the order
}

// CategorySummary is one aggregate row of the per-category breakdown used by
// the order query.
type CategorySummary struct {
	Category    string          `json:"category" example:"Travel"`
	TotalAmount decimal.Decimal `json:"totalAmount" example:"1500.5"`
	Records     int             `json:"records" example:"1"`
}

// Metrics is the headline figure row shown above every report.
type Metrics struct {
	GLCodes     int             `json:"glCodes" example:"12"`    // Distinct GL codes
	Orders      int             `json:"orders" example:"54"`     // Distinct Order/IO identifiers
	Categories  int             `json:"categories" example:"4"`  // Distinct categories
	Records     int             `json:"records" example:"310"`   // Number of records
	TotalAmount decimal.Decimal `json:"totalAmount" example:"80123.45"`
}

// SummarizeByGL groups records by (code, description, category), sums the
// amounts and counts the records. Rows are sorted by total amount descending;
// equal amounts are ordered by GL code ascending so the output is stable.
func SummarizeByGL(records []Record) []GLSummary {
	groups := make(map[string]*GLSummary)
	order := make([]string, 0)

	for _, record := range records {
		group, ok := groups[record.GLCode]
		if !ok {
			group = &GLSummary{
				GLCode:        record.GLCode,
				GLDescription: record.GLDescription,
				Category:      record.Category,
			}
			groups[record.GLCode] = group
			order = append(order, record.GLCode)
		}

		group.TotalAmount = group.TotalAmount.Add(record.Amount)
		group.Records++
	}

	summaries := make([]GLSummary, 0, len(groups))
	for _, code := range order {
		summaries = append(summaries, *groups[code])
	}

	slices.SortStableFunc(summaries, func(a, b GLSummary) int {
		if c := b.TotalAmount.Cmp(a.TotalAmount); c != 0 {
			return c
		}
		return strings.Compare(a.GLCode, b.GLCode)
	})

	return summaries
}

// SummarizeByOrder groups records by order, sums the amounts and counts the
// distinct GL codes each order touches. Sorted by total amount descending,
// then order ascending.
func SummarizeByOrder(records []Record) []OrderSummary {
	type group struct {
		total decimal.Decimal
		codes map[string]struct{}
	}

	groups := make(map[string]*group)
	order := make([]string, 0)

	for _, record := range records {
		g, ok := groups[record.Order]
		if !ok {
			g = &group{codes: make(map[string]struct{})}
			groups[record.Order] = g
			order = append(order, record.Order)
		}

		g.total = g.total.Add(record.Amount)
		g.codes[record.GLCode] = struct{}{}
	}

	summaries := make([]OrderSummary, 0, len(groups))
	for _, o := range order {
		summaries = append(summaries, OrderSummary{
			Order:       o,
			TotalAmount: groups[o].total,
			GLCodes:     len(groups[o].codes),
		})
	}

	slices.SortStableFunc(summaries, func(a, b OrderSummary) int {
		if c := b.TotalAmount.Cmp(a.TotalAmount); c != 0 {
			return c
		}
		return strings.Compare(a.Order, b.Order)
	})

	return summaries
}

// SummarizeByCategory groups records by category, sums the amounts and
// counts the records. Rows are ordered by category ascending.
func SummarizeByCategory(records []Record) []CategorySummary {
	groups := make(map[string]*CategorySummary)

	for _, record := range records {
		group, ok := groups[record.Category]
		if !ok {
			group = &CategorySummary{Category: record.Category}
			groups[record.Category] = group
		}

		group.TotalAmount = group.TotalAmount.Add(record.Amount)
		group.Records++
	}

	summaries := make([]CategorySummary, 0, len(groups))
	for _, group := range groups {
		summaries = append(summaries, *group)
	}

	slices.SortStableFunc(summaries, func(a, b CategorySummary) int {
		return strings.Compare(a.Category, b.Category)
	})

	return summaries
}

// Summarize computes the headline metrics for a set of records.
func Summarize(records []Record) Metrics {
	codes := make(map[string]struct{})
	orders := make(map[string]struct{})
	categories := make(map[string]struct{})
	total := decimal.Zero

	for _, record := range records {
		codes[record.GLCode] = struct{}{}
		orders[record.Order] = struct{}{}
		categories[record.Category] = struct{}{}
		total = total.Add(record.Amount)
	}

	return Metrics{
		GLCodes:     len(codes),
		Orders:      len(orders),
		Categories:  len(categories),
		Records:     len(records),
		TotalAmount: total,
	}
}
