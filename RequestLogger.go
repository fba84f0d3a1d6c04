package main

import (
	"github.com/gin-gonic/gin"
	"go.alis.build/alog"
	"net/http"
	"time"
)

const unmatchedRoute = "unmatched"

// RequestLogger replaces gin.Logger: one alog line and one metrics sample per request.
func RequestLogger(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		status := c.Writer.Status()
		metrics.ObserveRequest(c.Request.Method, route, status)

		ctx := c.Request.Context()
		latency := time.Since(started)
		if status >= http.StatusInternalServerError {
			alog.Errorf(ctx, "%s %s %d %s %s", c.Request.Method, c.Request.URL.Path, status, latency, c.Errors.String())
		} else {
			alog.Debugf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		}
	}
}
