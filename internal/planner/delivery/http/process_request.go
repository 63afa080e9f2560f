package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"weekly-task-planner/internal/planner"
)

func (h *handler) processSelectDayReq(c *gin.Context) (selectDayReq, error) {
	var req selectDayReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processSetMonthReq(c *gin.Context) (setMonthReq, error) {
	var req setMonthReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processSetYearReq(c *gin.Context) (setYearReq, error) {
	var req setYearReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}

// processSetPickerReq binds the toggle body and the :picker URI param.
func (h *handler) processSetPickerReq(c *gin.Context) (planner.SetPickerInput, error) {
	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return planner.SetPickerInput{}, errWrongBody
	}
	return planner.SetPickerInput{
		Picker: planner.Picker(c.Param("picker")),
		Open:   *req.Open,
	}, nil
}

func (h *handler) processSetDialogReq(c *gin.Context) (planner.SetDialogInput, error) {
	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return planner.SetDialogInput{}, errWrongBody
	}
	return planner.SetDialogInput{Open: *req.Open}, nil
}

func (h *handler) processUpdateDraftReq(c *gin.Context) (updateDraftReq, error) {
	var req updateDraftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, req.validate()
}

func (h *handler) processAddTaskReq(c *gin.Context) (addTaskReq, error) {
	var req addTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, req.validate()
}

func (h *handler) processListTasksReq(c *gin.Context) (listTasksReq, error) {
	var req listTasksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errWrongQuery
	}
	return req, nil
}

// processCompleteTaskReq reads the :id URI param.
func (h *handler) processCompleteTaskReq(c *gin.Context) (planner.CompleteTaskInput, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return planner.CompleteTaskInput{}, errInvalidTaskID
	}
	return planner.CompleteTaskInput{ID: id}, nil
}
