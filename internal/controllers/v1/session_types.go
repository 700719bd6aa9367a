package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gl-recovery/backend/internal/httputil"
	"github.com/gl-recovery/backend/internal/ledger"
	"github.com/gl-recovery/backend/internal/session"
	"github.com/google/uuid"
)

// Session is the API representation of an upload session.
type Session struct {
	ID          uuid.UUID      `json:"id" example:"55eecbd8-7c46-4b06-ada9-f287802fb05e"`
	CreatedAt   time.Time      `json:"createdAt" example:"2024-05-17T09:30:15.00000Z"`
	DroppedRows int            `json:"droppedRows" example:"2"` // Dump rows excluded because their amount was not numeric
	Totals      ledger.Metrics `json:"totals"`                  // Headline figures over the full (unfiltered) data set
	Links       SessionLinks   `json:"links"`
}

type SessionLinks struct {
	Self         string `json:"self" example:"https://example.com/v1/sessions/55eecbd8-7c46-4b06-ada9-f287802fb05e"`
	Categories   string `json:"categories" example:"https://example.com/v1/sessions/55eecbd8-7c46-4b06-ada9-f287802fb05e/categories"`
	Codes        string `json:"codes" example:"https://example.com/v1/sessions/55eecbd8-7c46-4b06-ada9-f287802fb05e/codes"`
	Records      string `json:"records" example:"https://example.com/v1/sessions/55eecbd8-7c46-4b06-ada9-f287802fb05e/records"`
	Summary      string `json:"summary" example:"https://example.com/v1/sessions/55eecbd8-7c46-4b06-ada9-f287802fb05e/summary"`
	GLSummary    string `json:"glSummary" example:"https://example.com/v1/sessions/55eecbd8-7c46-4b06-ada9-f287802fb05e/summary/gl"`
	OrderSummary string `json:"orderSummary" example:"https://example.com/v1/sessions/55eecbd8-7c46-4b06-ada9-f287802fb05e/summary/orders"`
	Query        string `json:"query" example:"https://example.com/v1/sessions/55eecbd8-7c46-4b06-ada9-f287802fb05e/query?order=30102204"`
	Exports      string `json:"exports" example:"https://example.com/v1/sessions/55eecbd8-7c46-4b06-ada9-f287802fb05e/export"`
}

func newSession(c *gin.Context, s *session.Session) Session {
	self := fmt.Sprintf("%s/sessions/%s", httputil.RequestPathV1(c), s.ID)

	return Session{
		ID:          s.ID,
		CreatedAt:   s.CreatedAt,
		DroppedRows: s.DroppedRows,
		Totals:      ledger.Summarize(s.Records),
		Links: SessionLinks{
			Self:         self,
			Categories:   self + "/categories",
			Codes:        self + "/codes",
			Records:      self + "/records",
			Summary:      self + "/summary",
			GLSummary:    self + "/summary/gl",
			OrderSummary: self + "/summary/orders",
			Query:        self + "/query",
			Exports:      self + "/export",
		},
	}
}

type SessionResponse struct {
	Data  *Session `json:"data"`                                                             // The session
	Error *string  `json:"error" example:"there is no session with the specified ID"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data  []string `json:"data" example:"Parking,Telecom,Travel"`                            // Mapped categories, sorted, without Uncategorized
	Error *string  `json:"error" example:"there is no session with the specified ID"` // The error, if any occurred
}

type CodeListResponse struct {
	Data  []session.Code `json:"data"`                                                       // GL codes with their descriptions
	Error *string        `json:"error" example:"there is no session with the specified ID"` // The error, if any occurred
}

type RecordListResponse struct {
	Data       []ledger.Record `json:"data"`                                                       // Filtered normalized records
	Error      *string         `json:"error" example:"there is no session with the specified ID"` // The error, if any occurred
	Pagination *Pagination     `json:"pagination"`                                                 // Pagination information
}

type MetricsResponse struct {
	Data  *ledger.Metrics `json:"data"`                                                       // Headline figures for the filtered records
	Error *string         `json:"error" example:"there is no session with the specified ID"` // The error, if any occurred
}

type GLSummaryListResponse struct {
	Data  []ledger.GLSummary `json:"data"`                                                       // Aggregate rows by GL code
	Error *string            `json:"error" example:"there is no session with the specified ID"` // The error, if any occurred
}

type OrderSummaryListResponse struct {
	Data  []ledger.OrderSummary `json:"data"`                                                       // Aggregate rows by Order/IO
	Error *string               `json:"error" example:"there is no session with the specified ID"` // The error, if any occurred
}
