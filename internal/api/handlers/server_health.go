package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Liveness handles GET /health/live.
func (s *Server) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /health/ready.
func (s *Server) Readiness(c *gin.Context) {
	checks := make(map[string]string)
	healthy := true

	if s.pool != nil {
		if err := s.pool.Ping(c.Request.Context()); err != nil {
			checks["database"] = "error"
			healthy = false
		} else {
			checks["database"] = "ok"
		}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	body := gin.H{"status": status, "checks": checks}
	if s.pools != nil {
		body["worker_pools"] = s.pools.Metrics()
	}
	c.JSON(httpStatus, body)
}
