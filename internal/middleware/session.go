package middleware

import (
	"github.com/gin-gonic/gin"

	"weekly-task-planner/internal/model"
	"weekly-task-planner/pkg/log"
	"weekly-task-planner/pkg/response"
)

// Session resolves the X-Planner-Session header to an open session, opening a new
// one when the header is missing or names a session that no longer exists. The
// resolved id is echoed back and stored as the request Scope.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		id := c.GetHeader(SessionHeader)
		if _, ok := m.sessions.Get(id); id == "" || !ok {
			s, err := m.sessions.Open(ctx)
			if err != nil {
				m.l.Errorf(ctx, "middleware.Session Open: %v", err)
				response.InternalError(c, err)
				c.Abort()
				return
			}
			id = s.ID
		}

		c.Header(SessionHeader, id)
		ctx = model.SetScopeToContext(ctx, model.Scope{SessionID: id})
		ctx = log.SetSessionToContext(ctx, id)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetScope returns the Scope set by Session.
func GetScope(c *gin.Context) model.Scope {
	sc, _ := model.GetScopeFromContext(c.Request.Context())
	return sc
}
