package v1

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gl-recovery/backend/internal/ledger"
	"github.com/gl-recovery/backend/internal/report"
)

const contentTypeCSV = "text/csv"

// serveCSV writes a CSV document as a file download.
func serveCSV(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentTypeCSV, data)
}

// @Summary		Download GL summary
// @Description	Returns the by-GL aggregate over the records matching the filter as a CSV download
// @Tags			Exports
// @Produce		text/csv
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id			path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			categories	query	[]string	false	"Categories to include. Empty includes all."
// @Param			codes		query	[]string	false	"GL codes to include, glob patterns allowed. Empty includes all."
// @Router			/v1/sessions/{id}/export/gl [get]
func (co Controller) ExportGLSummary(c *gin.Context) {
	sess, err := co.sessionFromURI(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var filter ledger.Filter
	_ = c.Bind(&filter)

	data, err := report.GLSummary(ledger.SummarizeByGL(filter.Apply(sess.Records)))
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	serveCSV(c, report.Filename(report.TypeGLSummary, "", time.Now()), data)
}

// @Summary		Download order summary
// @Description	Returns the by-Order/IO aggregate over the records matching the filter as a CSV download
// @Tags			Exports
// @Produce		text/csv
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id			path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			categories	query	[]string	false	"Categories to include. Empty includes all."
// @Param			codes		query	[]string	false	"GL codes to include, glob patterns allowed. Empty includes all."
// @Router			/v1/sessions/{id}/export/orders [get]
func (co Controller) ExportOrderSummary(c *gin.Context) {
	sess, err := co.sessionFromURI(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var filter ledger.Filter
	_ = c.Bind(&filter)

	data, err := report.OrderSummary(ledger.SummarizeByOrder(filter.Apply(sess.Records)))
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	serveCSV(c, report.Filename(report.TypeOrderSummary, "", time.Now()), data)
}

// @Summary		Download query details
// @Description	Returns the GL-wise breakdown for an Order/IO query as a CSV download
// @Tags			Exports
// @Produce		text/csv
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id			path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			order		query	string		true	"Order/IO identifier or a substring of it"
// @Param			categories	query	[]string	false	"Categories to include. Empty includes all."
// @Router			/v1/sessions/{id}/export/query [get]
func (co Controller) ExportQueryDetail(c *gin.Context) {
	sess, err := co.sessionFromURI(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var params QueryParams
	_ = c.Bind(&params)

	params.Order = strings.TrimSpace(params.Order)
	if params.Order == "" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errOrderQueryEmpty.Error(),
		})
		return
	}

	matched := ledger.Filter{
		Categories: params.Categories,
		Order:      params.Order,
	}.Apply(sess.Records)

	data, err := report.QueryDetail(ledger.SummarizeByGL(matched))
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	serveCSV(c, report.Filename(report.TypeRecoveries, params.Order, time.Now()), data)
}
