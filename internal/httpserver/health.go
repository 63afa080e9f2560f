package httpserver

import (
	"weekly-task-planner/pkg/response"

	"github.com/gin-gonic/gin"
)

// Identity reported by the health endpoints.
const (
	HealthMessage = "Weekly task planner API"
	HealthVersion = "1.0.0"
	ServiceName   = "weekly-task-planner"
)

// healthCheck reports the service identity and the calendar every session uses.
// @Summary Health Check
// @Description Service identity plus the planner calendar settings (location and week start)
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	cal := srv.sessions.Calendar()
	response.OK(c, gin.H{
		"status":     "healthy",
		"message":    HealthMessage,
		"version":    HealthVersion,
		"service":    ServiceName,
		"timezone":   cal.Location().String(),
		"week_start": cal.WeekStart().String(),
	})
}

// readyCheck reports the number of open planner sessions. Sessions live in
// memory only, so the service is ready as soon as the table exists.
// @Summary Readiness Check
// @Description Ready once the session table is up; reports how many planner sessions are open
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":   "ready",
		"sessions": srv.sessions.Len(),
		"service":  ServiceName,
	})
}

// liveCheck answers without touching the session table.
// @Summary Liveness Check
// @Description Process liveness only; does not open or look up planner sessions
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": ServiceName,
	})
}
