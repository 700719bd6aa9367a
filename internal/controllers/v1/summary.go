package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gl-recovery/backend/internal/ledger"
	"github.com/gl-recovery/backend/internal/session"
)

// sessionFromURI binds the session ID from the URI and loads the session.
func (co Controller) sessionFromURI(c *gin.Context) (*session.Session, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return nil, err
	}

	return co.Store.Get(uri.ID.UUID)
}

// RecordQueryFilter are the query parameters for the record list endpoint.
type RecordQueryFilter struct {
	ledger.Filter
	Offset uint `form:"offset"` // The offset of the first record returned. Defaults to 0.
	Limit  int  `form:"limit"`  // Maximum number of records to return. Defaults to 50.
}

// @Summary		Get categories
// @Description	Returns the mapped categories of the session, sorted. Uncategorized is not part of the list since it only marks unmapped GL codes.
// @Tags			Sessions
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		400	{object}	CategoryListResponse
// @Failure		404	{object}	CategoryListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id}/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	sess, err := co.sessionFromURI(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: sess.Categories()})
}

// @Summary		Get GL codes
// @Description	Returns the distinct GL codes of the session with their descriptions, sorted by code
// @Tags			Sessions
// @Produce		json
// @Success		200	{object}	CodeListResponse
// @Failure		400	{object}	CodeListResponse
// @Failure		404	{object}	CodeListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id}/codes [get]
func (co Controller) GetCodes(c *gin.Context) {
	sess, err := co.sessionFromURI(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CodeListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CodeListResponse{Data: sess.Codes()})
}

// @Summary		Get records
// @Description	Returns the normalized records matching the filter
// @Tags			Sessions
// @Produce		json
// @Success		200	{object}	RecordListResponse
// @Failure		400	{object}	RecordListResponse
// @Failure		404	{object}	RecordListResponse
// @Param			id			path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			categories	query	[]string	false	"Categories to include. Empty includes all."
// @Param			codes		query	[]string	false	"GL codes to include, glob patterns allowed. Empty includes all."
// @Param			order		query	string		false	"Substring to match against the Order/IO field"
// @Param			offset		query	uint		false	"The offset of the first record returned. Defaults to 0."
// @Param			limit		query	int			false	"Maximum number of records to return. Defaults to 50."
// @Router			/v1/sessions/{id}/records [get]
func (co Controller) GetRecords(c *gin.Context) {
	sess, err := co.sessionFromURI(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecordListResponse{
			Error: &s,
		})
		return
	}

	var filter RecordQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, RecordListResponse{
			Error: &s,
		})
		return
	}

	records := filter.Filter.Apply(sess.Records)
	total := len(records)

	// Skip the offset
	if filter.Offset >= uint(len(records)) {
		records = []ledger.Record{}
	} else {
		records = records[filter.Offset:]
	}

	// Default to 50 records and apply the limit
	limit := 50
	if c.Request.URL.Query().Has("limit") {
		limit = filter.Limit
	}
	if limit >= 0 && limit < len(records) {
		records = records[:limit]
	}

	c.JSON(http.StatusOK, RecordListResponse{
		Data: records,
		Pagination: &Pagination{
			Count:  len(records),
			Offset: filter.Offset,
			Limit:  limit,
			Total:  total,
		},
	})
}

// @Summary		Get summary metrics
// @Description	Returns the headline figures for the records matching the filter
// @Tags			Sessions
// @Produce		json
// @Success		200	{object}	MetricsResponse
// @Failure		400	{object}	MetricsResponse
// @Failure		404	{object}	MetricsResponse
// @Param			id			path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			categories	query	[]string	false	"Categories to include. Empty includes all."
// @Param			codes		query	[]string	false	"GL codes to include, glob patterns allowed. Empty includes all."
// @Router			/v1/sessions/{id}/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	sess, err := co.sessionFromURI(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MetricsResponse{
			Error: &s,
		})
		return
	}

	var filter ledger.Filter

	// Every parameter is bound into a string or a string slice, so this
	// will always succeed
	_ = c.Bind(&filter)

	metrics := ledger.Summarize(filter.Apply(sess.Records))
	c.JSON(http.StatusOK, MetricsResponse{Data: &metrics})
}

// @Summary		Get GL summary
// @Description	Returns the aggregate by GL code over the records matching the filter, sorted by total amount descending
// @Tags			Sessions
// @Produce		json
// @Success		200	{object}	GLSummaryListResponse
// @Failure		400	{object}	GLSummaryListResponse
// @Failure		404	{object}	GLSummaryListResponse
// @Param			id			path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			categories	query	[]string	false	"Categories to include. Empty includes all."
// @Param			codes		query	[]string	false	"GL codes to include, glob patterns allowed. Empty includes all."
// @Router			/v1/sessions/{id}/summary/gl [get]
func (co Controller) GetGLSummary(c *gin.Context) {
	sess, err := co.sessionFromURI(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GLSummaryListResponse{
			Error: &s,
		})
		return
	}

	var filter ledger.Filter

	// Every parameter is bound into a string or a string slice, so this
	// will always succeed
	_ = c.Bind(&filter)

	c.JSON(http.StatusOK, GLSummaryListResponse{
		Data: ledger.SummarizeByGL(filter.Apply(sess.Records)),
	})
}

// @Summary		Get order summary
// @Description	Returns the aggregate by Order/IO over the records matching the filter, sorted by total amount descending
// @Tags			Sessions
// @Produce		json
// @Success		200	{object}	OrderSummaryListResponse
// @Failure		400	{object}	OrderSummaryListResponse
// @Failure		404	{object}	OrderSummaryListResponse
// @Param			id			path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			categories	query	[]string	false	"Categories to include. Empty includes all."
// @Param			codes		query	[]string	false	"GL codes to include, glob patterns allowed. Empty includes all."
// @Router			/v1/sessions/{id}/summary/orders [get]
func (co Controller) GetOrderSummary(c *gin.Context) {
	sess, err := co.sessionFromURI(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OrderSummaryListResponse{
			Error: &s,
		})
		return
	}

	var filter ledger.Filter

	// Every parameter is bound into a string or a string slice, so this
	// will always succeed
	_ = c.Bind(&filter)

	c.JSON(http.StatusOK, OrderSummaryListResponse{
		Data: ledger.SummarizeByOrder(filter.Apply(sess.Records)),
	})
}
