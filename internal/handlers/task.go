package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Pritish2005/task-management-app/internal/auth"
	"github.com/Pritish2005/task-management-app/internal/dto"
	"github.com/Pritish2005/task-management-app/internal/service"
)

// Messages match the original API.
const (
	msgMissingFields = "Missing required fields"
	msgTaskNotFound  = "Task not found"
	msgServerError   = "Server error"
)

// TaskHandler handles task CRUD and status transitions. All routes sit
// behind auth.RequireAuth, so the user id is always present in context.
type TaskHandler struct {
	svc *service.TaskService
}

// NewTaskHandler returns a new TaskHandler.
func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// List godoc
// @Summary      List own tasks ordered by start time
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.TaskResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /task [get]
func (h *TaskHandler) List(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	list, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Msg: msgServerError})
		return
	}
	c.JSON(http.StatusOK, dto.TasksToResponses(list))
}

// Create godoc
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateTaskRequest  true  "Task fields"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /task [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Msg: msgMissingFields})
		return
	}
	userID := auth.UserIDFromContext(c)
	t, err := h.svc.Create(c.Request.Context(), userID, req.Title, req.StartTime, req.EndTime, req.Priority)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTimeRange) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Msg: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Msg: msgServerError})
		return
	}
	c.JSON(http.StatusCreated, dto.TaskToResponse(t))
}

// Update godoc
// @Summary      Replace a task's title, times and priority
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int  true  "Task ID"
// @Param        body  body      dto.UpdateTaskRequest  true  "Task fields"
// @Success      200   {object}  dto.TaskWithMsgResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /task/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Msg: msgMissingFields})
		return
	}
	userID := auth.UserIDFromContext(c)
	t, err := h.svc.Update(c.Request.Context(), userID, id, req.Title, req.StartTime, req.EndTime, req.Priority)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Msg: msgTaskNotFound})
		case errors.Is(err, service.ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Msg: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Msg: msgServerError})
		}
		return
	}
	c.JSON(http.StatusOK, dto.TaskWithMsgResponse{Msg: "Task updated successfully", Task: dto.TaskToResponse(t)})
}

// SetStatus godoc
// @Summary      Set a task's status
// @Description  Transitioning to finished stamps endTime with the server clock.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int  true  "Task ID"
// @Param        body  body      dto.SetStatusRequest  true  "pending or finished"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /task/{id}/status [patch]
func (h *TaskHandler) SetStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Msg: "Invalid status value"})
		return
	}
	userID := auth.UserIDFromContext(c)
	t, err := h.svc.SetStatus(c.Request.Context(), userID, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Msg: "Invalid status value"})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Msg: msgTaskNotFound})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Msg: msgServerError})
		}
		return
	}
	c.JSON(http.StatusOK, dto.TaskToResponse(t))
}

// Delete godoc
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  dto.TaskWithMsgResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /task/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	userID := auth.UserIDFromContext(c)
	t, err := h.svc.Delete(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Msg: msgTaskNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Msg: msgServerError})
		return
	}
	c.JSON(http.StatusOK, dto.TaskWithMsgResponse{Msg: "Task deleted successfully", Task: dto.TaskToResponse(t)})
}

// parseID reads the :id path param. A malformed id cannot name any task, so
// it is reported the same way as an absent one.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Msg: msgTaskNotFound})
		return 0, false
	}
	return id, true
}
