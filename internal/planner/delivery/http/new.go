package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"weekly-task-planner/internal/planner"
	"weekly-task-planner/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	View(c *gin.Context)
	CloseSession(c *gin.Context)
	PrevWeek(c *gin.Context)
	NextWeek(c *gin.Context)
	SelectDay(c *gin.Context)
	SetMonth(c *gin.Context)
	SetYear(c *gin.Context)
	SetPicker(c *gin.Context)
	SetDialog(c *gin.Context)
	UpdateDraft(c *gin.Context)
	SubmitDraft(c *gin.Context)
	ListTasks(c *gin.Context)
	AddTask(c *gin.Context)
	CompleteTask(c *gin.Context)
}

// SessionCloser tears a session down when the client leaves.
type SessionCloser interface {
	Close(ctx context.Context, id string) bool
}

type handler struct {
	l        log.Logger
	uc       planner.UseCase
	sessions SessionCloser
}

// New creates a new HTTP handler for the planner domain.
func New(l log.Logger, uc planner.UseCase, sessions SessionCloser) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		sessions: sessions,
	}
}
