package http

import (
	"weekly-task-planner/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// DELETE /session reads the X-Planner-Session header as sent; every other route
// runs behind the Session middleware, which resolves or opens the session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())

	rg.DELETE("/session", h.CloseSession)

	sess := rg.Group("", mw.Session())
	sess.GET("/view", h.View)

	week := sess.Group("/week")
	{
		week.POST("/prev", h.PrevWeek)
		week.POST("/next", h.NextWeek)
	}

	sess.PUT("/day", h.SelectDay)
	sess.PUT("/month", h.SetMonth)
	sess.PUT("/year", h.SetYear)
	sess.PUT("/pickers/:picker", h.SetPicker)
	sess.PUT("/dialog", h.SetDialog)

	draft := sess.Group("/draft")
	{
		draft.PUT("", h.UpdateDraft)
		draft.POST("/submit", h.SubmitDraft)
	}

	tasks := sess.Group("/tasks")
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("", h.AddTask)
		tasks.POST("/:id/complete", h.CompleteTask)
	}
}
