// Package report serializes aggregate tables to downloadable CSV reports.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/gl-recovery/backend/internal/ledger"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// Report type names used in download filenames.
const (
	TypeGLSummary    = "GL_Summary"
	TypeOrderSummary = "Order_Summary"
	TypeRecoveries   = "Recoveries"
)

// GLRow is one line of the GL summary CSV. The csv tags are the column
// headers the frontend displays, do not rename them.
type GLRow struct {
	GLCode        string          `csv:"GL Code"`
	GLDescription string          `csv:"GL Description"`
	Category      string          `csv:"Category"`
	TotalAmount   decimal.Decimal `csv:"Total Amount (AED)"`
	Records       int             `csv:"Number of Records"`
}

// OrderRow is one line of the Order/IO summary CSV.
type OrderRow struct {
	Order       string          `csv:"Order/IO"`
	TotalAmount decimal.Decimal `csv:"Total Amount (AED)"`
	GLCodes     int             `csv:"Number of GLs"`
}

// DetailRow is one line of the per-query GL breakdown CSV.
type DetailRow struct {
	GLCode        string          `csv:"GL Code"`
	GLDescription string          `csv:"GL Description"`
	Category      string          `csv:"Category"`
	Amount        decimal.Decimal `csv:"Amount (AED)"`
}

// GLSummary renders the by-GL aggregate as CSV.
func GLSummary(summaries []ledger.GLSummary) ([]byte, error) {
	rows := make([]GLRow, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, GLRow{
			GLCode:        s.GLCode,
			GLDescription: s.GLDescription,
			Category:      s.Category,
			TotalAmount:   s.TotalAmount,
			Records:       s.Records,
		})
	}

	return gocsv.MarshalBytes(&rows)
}

// OrderSummary renders the by-order aggregate as CSV.
func OrderSummary(summaries []ledger.OrderSummary) ([]byte, error) {
	rows := make([]OrderRow, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, OrderRow{
			Order:       s.Order,
			TotalAmount: s.TotalAmount,
			GLCodes:     s.GLCodes,
		})
	}

	return gocsv.MarshalBytes(&rows)
}

// QueryDetail renders the GL breakdown of an order query as CSV.
func QueryDetail(summaries []ledger.GLSummary) ([]byte, error) {
	rows := make([]DetailRow, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, DetailRow{
			GLCode:        s.GLCode,
			GLDescription: s.GLDescription,
			Category:      s.Category,
			Amount:        s.TotalAmount,
		})
	}

	return gocsv.MarshalBytes(&rows)
}

// Filename builds the download filename for a report: the report type, the
// query term if there is one, and a timestamp.
func Filename(reportType, query string, now time.Time) string {
	name := reportType
	if query != "" {
		name += "_" + sanitize(query)
	}

	return fmt.Sprintf("%s_%s.csv", name, now.Format("20060102_150405"))
}

// sanitize strips characters that have no business in a filename or a
// Content-Disposition header.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', ';', '\n', '\r':
			return '_'
		}
		return r
	}, s)
}
