package httputil

import (
	"github.com/gin-gonic/gin"
)

// RequestHost returns the base URL the client used to reach the backend.
// The scheme defaults to http and is upgraded when a reverse proxy sets
// x-forwarded-proto.
//
// We can reasonably expect a reverse proxy to set x-forwarded-host as it is
// a de-facto standard. If it is set, we use it to construct links, together
// with the x-forwarded-prefix header. If that is unset, fall back to "/api".
// Without a proxy, the request host is used unchanged.
func RequestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	host := c.Request.Host
	var forwardedPrefix string

	xForwardedHost := c.Request.Header.Get("x-forwarded-host")
	if xForwardedHost != "" {
		host = xForwardedHost

		forwardedPrefix = c.Request.Header.Get("x-forwarded-prefix")
		if forwardedPrefix == "" {
			forwardedPrefix = "/api"
		}
	}

	return scheme + "://" + host + forwardedPrefix
}

// RequestPathV1 returns the URL with the prefix for API v1.
func RequestPathV1(c *gin.Context) string {
	return RequestHost(c) + "/v1"
}
