// Package healthz provides the liveness endpoint.
package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gl-recovery/backend/internal/httputil"
)

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health. The backend holds all state in memory, it is healthy as soon as it serves requests.
// @Tags			General
// @Success		204
// @Router			/healthz [get]
func Get(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
