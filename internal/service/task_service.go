package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	dom "github.com/Pritish2005/task-management-app/internal/domain"
	"github.com/Pritish2005/task-management-app/internal/repo"
)

var (
	ErrNotFound         = errors.New("task not found")
	ErrInvalidStatus    = errors.New("invalid status value")
	ErrInvalidTimeRange = errors.New("endTime must be after startTime")
)

// TaskService holds task business rules. Every operation takes the
// authenticated user id explicitly; ownership scoping happens in the repo,
// so a task owned by someone else is reported as not found.
type TaskService struct {
	repo repo.TaskRepo
}

// NewTaskService returns a new TaskService.
func NewTaskService(r repo.TaskRepo) *TaskService {
	return &TaskService{repo: r}
}

// List returns all tasks owned by the user, ordered by ascending start time.
// An empty result is an empty slice, not an error.
func (s *TaskService) List(ctx context.Context, userID int64) ([]dom.Task, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Create stores a new pending task owned by the user.
func (s *TaskService) Create(ctx context.Context, userID int64, title string, start, end time.Time, priority int) (dom.Task, error) {
	title = strings.TrimSpace(title)
	if !end.After(start) {
		return dom.Task{}, ErrInvalidTimeRange
	}
	return s.repo.Create(ctx, dom.Task{
		UserID:    userID,
		Title:     title,
		Priority:  priority,
		Status:    dom.StatusPending,
		StartTime: start,
		EndTime:   end,
	})
}

// Update replaces title, start/end times and priority in place. Status is
// untouched.
func (s *TaskService) Update(ctx context.Context, userID, id int64, title string, start, end time.Time, priority int) (dom.Task, error) {
	title = strings.TrimSpace(title)
	if !end.After(start) {
		return dom.Task{}, ErrInvalidTimeRange
	}
	t, err := s.repo.Update(ctx, userID, id, title, start, end, priority)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	return t, nil
}

// SetStatus flips a task between pending and finished. Transitioning to
// finished stamps the end time with the server clock, overriding whatever
// end time the task had.
func (s *TaskService) SetStatus(ctx context.Context, userID, id int64, status string) (dom.Task, error) {
	if status != dom.StatusPending && status != dom.StatusFinished {
		return dom.Task{}, ErrInvalidStatus
	}
	var endTime *time.Time
	if status == dom.StatusFinished {
		now := time.Now().UTC()
		endTime = &now
	}
	t, err := s.repo.SetStatus(ctx, userID, id, status, endTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	return t, nil
}

// Delete removes the task immediately and returns the removed record.
func (s *TaskService) Delete(ctx context.Context, userID, id int64) (dom.Task, error) {
	t, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	return t, nil
}
