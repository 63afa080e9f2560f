package httpserver

import (
	"context"

	"weekly-task-planner/internal/middleware"
	plannerHTTP "weekly-task-planner/internal/planner/delivery/http"
	plannerUC "weekly-task-planner/internal/planner/usecase"

	"github.com/gin-gonic/gin"
)

// setupPlannerDomain initializes the planner domain and registers its routes.
// Each session owns its task repository, so no repository is built here.
func (srv HTTPServer) setupPlannerDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. UseCase
	uc := plannerUC.New(srv.l, srv.sessions, srv.yearRadius)

	// 2. HTTP Handler
	h := plannerHTTP.New(srv.l, uc, srv.sessions)

	// 3. Routes: registers /api/v1/planner/...
	mw := middleware.New(srv.l, srv.sessions, srv.rateLimitPerMin)
	plannerHTTP.RegisterRoutes(api.Group("/planner"), h, mw)

	srv.l.Infof(ctx, "Planner domain registered")
	return nil
}
