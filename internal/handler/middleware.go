package handler

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/maxviazov/planning-api/internal/config"
	"github.com/maxviazov/planning-api/pkg/response"
	"github.com/rs/zerolog"
)

// RequestIDHeader carries the request id in and out.
const RequestIDHeader = "X-Request-ID"

// RequestLogger writes one zerolog event per request. It reuses an inbound X-Request-ID or mints one.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	l := logger.With().Str("module", "http").Logger()
	return func(c *gin.Context) {
		start := time.Now()
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set("request_id", reqID)
		c.Header(RequestIDHeader, reqID)

		c.Next()

		status := c.Writer.Status()
		ev := l.Info()
		switch {
		case status >= http.StatusInternalServerError:
			ev = l.Error()
		case status >= http.StatusBadRequest:
			ev = l.Warn()
		}
		if len(c.Errors) > 0 {
			ev = ev.Str("errors", c.Errors.String())
		}
		ev.Str("request_id", reqID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("route", c.FullPath()).
			Int("status", status).
			Int("size", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// Recovery turns a panic into a 500 with the standard error payload.
func Recovery(logger zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("handler panicked")
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorPayload{Error: "internal_error"})
	})
}

// CORS builds the cross-origin middleware. A "*" entry allows every origin.
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	cc := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 0 || slices.Contains(cfg.AllowedOrigins, "*") {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = cfg.AllowedOrigins
	}
	return cors.New(cc)
}
