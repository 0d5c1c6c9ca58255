package dto

import (
	"time"

	dom "github.com/Pritish2005/task-management-app/internal/domain"
)

// CreateTaskRequest is the JSON body for POST /api/task. All four fields are
// required; status is never client-supplied on creation.
type CreateTaskRequest struct {
	Title     string    `json:"title" binding:"required,min=1"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
	Priority  int       `json:"priority" binding:"required,min=1,max=5"`
}

// UpdateTaskRequest is the JSON body for PUT /api/task/:id. It replaces all
// four fields in place; status is untouched by a full update.
type UpdateTaskRequest struct {
	Title     string    `json:"title" binding:"required,min=1"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
	Priority  int       `json:"priority" binding:"required,min=1,max=5"`
}

// SetStatusRequest is the JSON body for PATCH /api/task/:id/status.
// Status values are checked in the service so that an unknown value yields
// the invalid-status message rather than a generic binding error.
type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// TaskResponse is the wire shape of a task. Key names (_id, userId) are kept
// compatible with the clients of the original API.
type TaskResponse struct {
	ID        int64     `json:"_id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Priority  int       `json:"priority"`
	Status    string    `json:"status"`
	UserID    int64     `json:"userId"`
}

// TaskWithMsgResponse wraps a task with a confirmation message, as returned
// by update and delete.
type TaskWithMsgResponse struct {
	Msg  string       `json:"msg"`
	Task TaskResponse `json:"task"`
}

// TaskToResponse converts a domain task to its wire shape.
func TaskToResponse(t dom.Task) TaskResponse {
	return TaskResponse{
		ID:        t.ID,
		Title:     t.Title,
		StartTime: t.StartTime,
		EndTime:   t.EndTime,
		Priority:  t.Priority,
		Status:    t.Status,
		UserID:    t.UserID,
	}
}

// ResponseToTask converts a wire task back to its domain shape, for callers
// (the API client, the CLI) that feed fetched tasks into the stats engine.
func ResponseToTask(t TaskResponse) dom.Task {
	return dom.Task{
		ID:        t.ID,
		Title:     t.Title,
		StartTime: t.StartTime,
		EndTime:   t.EndTime,
		Priority:  t.Priority,
		Status:    t.Status,
		UserID:    t.UserID,
	}
}

// ResponsesToTasks converts a slice of wire tasks, preserving order.
func ResponsesToTasks(list []TaskResponse) []dom.Task {
	out := make([]dom.Task, len(list))
	for i := range list {
		out[i] = ResponseToTask(list[i])
	}
	return out
}

// TasksToResponses converts a slice of domain tasks, preserving order.
func TasksToResponses(list []dom.Task) []TaskResponse {
	out := make([]TaskResponse, len(list))
	for i := range list {
		out[i] = TaskToResponse(list[i])
	}
	return out
}
