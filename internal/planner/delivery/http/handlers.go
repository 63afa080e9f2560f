package http

import (
	"github.com/gin-gonic/gin"

	"weekly-task-planner/internal/middleware"
	"weekly-task-planner/pkg/log"
	"weekly-task-planner/pkg/response"
)

// View godoc
// @Summary     Get the planner view
// @Description Returns the week strip, the active day's grouped tasks, pickers and dialog state. Opens a session when none is given.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       X-Planner-Session header string false "Planner session id"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/view [GET]
func (h *handler) View(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	output, err := h.uc.View(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.View: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newViewResp(output))
}

// CloseSession godoc
// @Summary     Close the planner session
// @Description Discards the session and cancels its pending task removals. An unknown or missing id reports closed=false and opens nothing.
// @Tags        Planner
// @Produce     json
// @Param       X-Planner-Session header string true "Planner session id"
// @Success     200 {object} closeSessionResp
// @Router      /api/v1/planner/session [DELETE]
func (h *handler) CloseSession(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.GetHeader(middleware.SessionHeader)
	if id == "" {
		response.OK(c, closeSessionResp{Closed: false})
		return
	}

	closed := h.sessions.Close(log.SetSessionToContext(ctx, id), id)
	response.OK(c, closeSessionResp{Closed: closed})
}

// PrevWeek godoc
// @Summary     Previous week
// @Description Moves the active day back by seven days.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       X-Planner-Session header string false "Planner session id"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/week/prev [POST]
func (h *handler) PrevWeek(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	output, err := h.uc.ShiftWeek(ctx, sc, -1)
	if err != nil {
		h.l.Errorf(ctx, "uc.ShiftWeek: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newViewResp(output))
}

// NextWeek godoc
// @Summary     Next week
// @Description Moves the active day forward by seven days.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       X-Planner-Session header string false "Planner session id"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/week/next [POST]
func (h *handler) NextWeek(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	output, err := h.uc.ShiftWeek(ctx, sc, 1)
	if err != nil {
		h.l.Errorf(ctx, "uc.ShiftWeek: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newViewResp(output))
}

// SelectDay godoc
// @Summary     Select a day
// @Description Makes the given date the active day.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       X-Planner-Session header string false "Planner session id"
// @Param       body body selectDayReq true "Day to select"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/day [PUT]
func (h *handler) SelectDay(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processSelectDayReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SelectDay(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SelectDay: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newViewResp(output))
}

// SetMonth godoc
// @Summary     Set the month
// @Description Replaces the month of the active day, clamping the day to the month length, and closes the month picker.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       X-Planner-Session header string false "Planner session id"
// @Param       body body setMonthReq true "Month 1-12"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/month [PUT]
func (h *handler) SetMonth(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processSetMonthReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SetMonth(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetMonth: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newViewResp(output))
}

// SetYear godoc
// @Summary     Set the year
// @Description Replaces the year of the active day and closes the year picker.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       X-Planner-Session header string false "Planner session id"
// @Param       body body setYearReq true "Year"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/year [PUT]
func (h *handler) SetYear(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processSetYearReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SetYear(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetYear: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newViewResp(output))
}

// SetPicker godoc
// @Summary     Open or close a picker
// @Description Toggles the month or year picker.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       X-Planner-Session header string false "Planner session id"
// @Param       picker path string true "month or year"
// @Param       body   body toggleReq true "Open flag"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/pickers/{picker} [PUT]
func (h *handler) SetPicker(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	input, err := h.processSetPickerReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SetPicker(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.SetPicker: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newViewResp(output))
}

// SetDialog godoc
// @Summary     Open or close the add-task dialog
// @Description Toggles the add-task dialog.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       X-Planner-Session header string false "Planner session id"
// @Param       body body toggleReq true "Open flag"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/dialog [PUT]
func (h *handler) SetDialog(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	input, err := h.processSetDialogReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SetDialog(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.SetDialog: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newViewResp(output))
}

// UpdateDraft godoc
// @Summary     Edit the add-task draft
// @Description Applies the given fields to the dialog draft. Absent fields are left unchanged.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       X-Planner-Session header string false "Planner session id"
// @Param       body body updateDraftReq true "Draft fields"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/draft [PUT]
func (h *handler) UpdateDraft(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processUpdateDraftReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateDraft(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateDraft: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newViewResp(output))
}

// SubmitDraft godoc
// @Summary     Submit the add-task draft
// @Description Adds the draft as a task on the active day, then resets the draft and closes the dialog.
// @Tags        Planner
// @Produce     json
// @Param       X-Planner-Session header string false "Planner session id"
// @Success     200 {object} addTaskResp
// @Failure     422 {object} response.Resp "Title is required"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/draft/submit [POST]
func (h *handler) SubmitDraft(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	output, err := h.uc.SubmitDraft(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.SubmitDraft: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAddTaskResp(output))
}

// ListTasks godoc
// @Summary     List tasks of a day
// @Description Returns the tasks of the given day in insertion order. Defaults to the active day.
// @Tags        Planner
// @Produce     json
// @Param       X-Planner-Session header string false "Planner session id"
// @Param       date query string false "Day key YYYY-MM-DD"
// @Success     200 {object} listTasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processListTasksReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListForDay(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListForDay: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListTasksResp(output))
}

// AddTask godoc
// @Summary     Add a task
// @Description Adds a task to the active day. The duration is derived from the start and end slots.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       X-Planner-Session header string false "Planner session id"
// @Param       body body addTaskReq true "Task data"
// @Success     200 {object} addTaskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Title is required"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/tasks [POST]
func (h *handler) AddTask(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processAddTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AddTask(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAddTaskResp(output))
}

// CompleteTask godoc
// @Summary     Complete a task
// @Description Marks the task completed and schedules its removal. Unknown ids report found=false.
// @Tags        Planner
// @Produce     json
// @Param       X-Planner-Session header string false "Planner session id"
// @Param       id path int true "Task ID"
// @Success     200 {object} completeTaskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/tasks/{id}/complete [POST]
func (h *handler) CompleteTask(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	input, err := h.processCompleteTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CompleteTask(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.CompleteTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCompleteTaskResp(output))
}
