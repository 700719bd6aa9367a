package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gl-recovery/backend/internal/httputil"
	"github.com/gl-recovery/backend/internal/ledger"
	"github.com/gl-recovery/backend/internal/spreadsheet"
	"github.com/rs/zerolog/log"
)

// RegisterSessionRoutes registers the routes for upload sessions with
// the RouterGroup that is passed.
func (co Controller) RegisterSessionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSessionList)
		r.POST("", co.CreateSession)
	}

	// Session with ID
	{
		r.OPTIONS("/:id", co.OptionsSessionDetail)
		r.GET("/:id", co.GetSession)
		r.DELETE("/:id", co.DeleteSession)
	}

	// Filter and aggregation endpoints
	{
		r.OPTIONS("/:id/categories", co.OptionsSessionSub)
		r.GET("/:id/categories", co.GetCategories)

		r.OPTIONS("/:id/codes", co.OptionsSessionSub)
		r.GET("/:id/codes", co.GetCodes)

		r.OPTIONS("/:id/records", co.OptionsSessionSub)
		r.GET("/:id/records", co.GetRecords)

		r.OPTIONS("/:id/summary", co.OptionsSessionSub)
		r.GET("/:id/summary", co.GetSummary)

		r.OPTIONS("/:id/summary/gl", co.OptionsSessionSub)
		r.GET("/:id/summary/gl", co.GetGLSummary)

		r.OPTIONS("/:id/summary/orders", co.OptionsSessionSub)
		r.GET("/:id/summary/orders", co.GetOrderSummary)

		r.OPTIONS("/:id/query", co.OptionsSessionSub)
		r.GET("/:id/query", co.GetQuery)
	}

	// CSV downloads
	{
		r.OPTIONS("/:id/export/gl", co.OptionsSessionSub)
		r.GET("/:id/export/gl", co.ExportGLSummary)

		r.OPTIONS("/:id/export/orders", co.OptionsSessionSub)
		r.GET("/:id/export/orders", co.ExportOrderSummary)

		r.OPTIONS("/:id/export/query", co.OptionsSessionSub)
		r.GET("/:id/export/query", co.ExportQueryDetail)
	}
}

// getUploadedFile returns the form file for the field and handles potential
// errors.
func getUploadedFile(c *gin.Context, field string) (multipart.File, string, error) {
	formFile, err := c.FormFile(field)
	if formFile == nil {
		return nil, "", fmt.Errorf("%w: %q", errNoFileUpload, field)
	}

	if err != nil {
		return nil, "", err
	}

	switch strings.ToLower(filepath.Ext(formFile.Filename)) {
	case ".xlsx", ".csv":
	default:
		return nil, "", fmt.Errorf("%w: .xlsx, .csv", errWrongFileSuffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, "", err
	}

	return f, formFile.Filename, nil
}

// parseUpload reads one uploaded spreadsheet into raw rows.
func parseUpload(c *gin.Context, field string) ([][]string, error) {
	f, filename, err := getUploadedFile(c, field)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return spreadsheet.Parse(f, filename)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sessions
// @Success		204
// @Router			/v1/sessions [options]
func OptionsSessionList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sessions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id} [options]
func (co Controller) OptionsSessionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.Store.Get(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// OptionsSessionSub answers OPTIONS for the read-only sub-resources of a
// session.
//
// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sessions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id}/summary [options]
func (co Controller) OptionsSessionSub(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.Store.Get(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create session
// @Description	Parses the uploaded GL dump and GL description files and creates a new reporting session from them
// @Tags			Sessions
// @Accept			multipart/form-data
// @Produce		json
// @Success		201				{object}	SessionResponse
// @Failure		400				{object}	SessionResponse
// @Param			dump			formData	file	true	"GL dump spreadsheet"
// @Param			descriptions	formData	file	true	"GL description spreadsheet"
// @Router			/v1/sessions [post]
func (co Controller) CreateSession(c *gin.Context) {
	dumpRows, err := parseUpload(c, "dump")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	descriptionRows, err := parseUpload(c, "descriptions")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	lookup := spreadsheet.BuildLookup(descriptionRows)

	result, err := ledger.Normalize(dumpRows, ledger.DefaultLayout(), lookup)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	s := co.Store.Create(result, lookup)
	log.Info().
		Str("session", s.ID.String()).
		Int("records", len(s.Records)).
		Int("dropped", s.DroppedRows).
		Msg("session created")

	data := newSession(c, s)
	c.JSON(http.StatusCreated, SessionResponse{Data: &data})
}

// @Summary		Get session
// @Description	Returns a specific session with its data summary
// @Tags			Sessions
// @Produce		json
// @Success		200	{object}	SessionResponse
// @Failure		400	{object}	SessionResponse
// @Failure		404	{object}	SessionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id} [get]
func (co Controller) GetSession(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	sess, err := co.Store.Get(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	data := newSession(c, sess)
	c.JSON(http.StatusOK, SessionResponse{Data: &data})
}

// @Summary		Delete session
// @Description	Deletes a session and all data uploaded for it
// @Tags			Sessions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id} [delete]
func (co Controller) DeleteSession(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.Store.Delete(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Delete everything
// @Description	Deletes all sessions
// @Tags			v1
// @Success		204
// @Router			/v1 [delete]
func (co Controller) DeleteAll(c *gin.Context) {
	co.Store.DeleteAll()
	c.JSON(http.StatusNoContent, nil)
}
