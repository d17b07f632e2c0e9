package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the Gin engine: global middleware first, then routes.
// Route order and middleware stack follow the teacher's gin_middleware.go
// layering (request ID, CORS, gzip, access log, recovery), with a per-IP
// rate limiter added in front of the one expensive endpoint.
func NewRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(RequestIDMiddleware())
	r.Use(CORSMiddleware())
	r.Use(GzipMiddleware())
	r.Use(LoggerMiddleware())
	r.Use(RecoveryMiddleware())
	r.Use(s.metricsMiddleware())

	r.GET("/health", s.handleHealth)
	r.GET("/health/detail", s.handleHealthDetail)
	r.GET("/version", s.handleVersion)
	r.POST("/reload", s.handleReload)

	r.POST("/detect", RateLimitMiddleware(s.cfg.RateLimitRPS, s.cfg.RateLimitBurst), s.handleDetect)

	return r
}

// metricsMiddleware records every request's outcome and latency into the
// server's requestMetrics, independent of the per-error apperr collector.
func (s *Server) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		success := c.Writer.Status() < 400
		s.requestStats.record(success, time.Since(start))
	}
}
