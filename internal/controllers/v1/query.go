package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gl-recovery/backend/internal/ledger"
)

// QueryParams are the query parameters for the order/employee query.
type QueryParams struct {
	Order      string   `form:"order"`      // Order/IO identifier or a substring of it
	Categories []string `form:"categories"` // Categories to include. Empty means all.
}

// QueryResult is the outcome of an order/employee query.
type QueryResult struct {
	Order      string                   `json:"order" example:"30102204"` // The query term
	Found      int                      `json:"found" example:"3"`        // Number of matching records. 0 is a valid result, not an error.
	Totals     ledger.Metrics           `json:"totals"`                   // Headline figures over the matching records
	ByCategory []ledger.CategorySummary `json:"byCategory"`               // Category-wise breakdown
	ByGL       []ledger.GLSummary       `json:"byGL"`                     // GL-wise breakdown
}

type QueryResponse struct {
	Data  *QueryResult `json:"data"`                                                        // The query result
	Error *string      `json:"error" example:"the order query parameter must be set"` // The error, if any occurred
}

// @Summary		Query recoveries
// @Description	Searches the session's records for an Order/IO identifier. The match is a case-sensitive substring match. A query without matches returns an empty result, not an error.
// @Tags			Sessions
// @Produce		json
// @Success		200	{object}	QueryResponse
// @Failure		400	{object}	QueryResponse
// @Failure		404	{object}	QueryResponse
// @Param			id			path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			order		query	string		true	"Order/IO identifier or a substring of it"
// @Param			categories	query	[]string	false	"Categories to include. Empty includes all."
// @Router			/v1/sessions/{id}/query [get]
func (co Controller) GetQuery(c *gin.Context) {
	sess, err := co.sessionFromURI(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), QueryResponse{
			Error: &s,
		})
		return
	}

	var params QueryParams
	_ = c.Bind(&params)

	params.Order = strings.TrimSpace(params.Order)
	if params.Order == "" {
		s := errOrderQueryEmpty.Error()
		c.JSON(http.StatusBadRequest, QueryResponse{
			Error: &s,
		})
		return
	}

	matched := ledger.Filter{
		Categories: params.Categories,
		Order:      params.Order,
	}.Apply(sess.Records)

	c.JSON(http.StatusOK, QueryResponse{
		Data: &QueryResult{
			Order:      params.Order,
			Found:      len(matched),
			Totals:     ledger.Summarize(matched),
			ByCategory: ledger.SummarizeByCategory(matched),
			ByGL:       ledger.SummarizeByGL(matched),
		},
	})
}
