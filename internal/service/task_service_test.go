package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "github.com/Pritish2005/task-management-app/internal/domain"
	"github.com/Pritish2005/task-management-app/internal/repo"
)

var base = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

func newTaskSvc() *TaskService {
	return NewTaskService(repo.NewMemoryTaskRepo())
}

func TestCreateDefaultsToPending(t *testing.T) {
	svc := newTaskSvc()

	task, err := svc.Create(context.Background(), 1, "write report", base, base.Add(2*time.Hour), 2)
	require.NoError(t, err)

	assert.Equal(t, dom.StatusPending, task.Status)
	assert.Equal(t, int64(1), task.UserID)
	assert.NotZero(t, task.ID)
}

func TestCreateRejectsInvertedTimeRange(t *testing.T) {
	svc := newTaskSvc()

	_, err := svc.Create(context.Background(), 1, "bad", base, base.Add(-time.Hour), 2)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = svc.Create(context.Background(), 1, "bad", base, base, 2)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	list, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListOrderedByStartTime(t *testing.T) {
	svc := newTaskSvc()

	// Insert out of order.
	_, err := svc.Create(context.Background(), 1, "second", base.Add(2*time.Hour), base.Add(3*time.Hour), 1)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), 1, "first", base, base.Add(time.Hour), 1)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), 1, "third", base.Add(4*time.Hour), base.Add(5*time.Hour), 1)
	require.NoError(t, err)

	list, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Title)
	assert.Equal(t, "second", list[1].Title)
	assert.Equal(t, "third", list[2].Title)
}

func TestListScopedToOwner(t *testing.T) {
	svc := newTaskSvc()

	_, err := svc.Create(context.Background(), 1, "mine", base, base.Add(time.Hour), 1)
	require.NoError(t, err)

	list, err := svc.List(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateReplacesFieldsKeepsStatus(t *testing.T) {
	svc := newTaskSvc()

	created, err := svc.Create(context.Background(), 1, "old title", base, base.Add(time.Hour), 1)
	require.NoError(t, err)
	_, err = svc.SetStatus(context.Background(), 1, created.ID, dom.StatusFinished)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), 1, created.ID, "new title", base.Add(time.Hour), base.Add(3*time.Hour), 5)
	require.NoError(t, err)

	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, 5, updated.Priority)
	assert.Equal(t, base.Add(time.Hour), updated.StartTime)
	assert.Equal(t, base.Add(3*time.Hour), updated.EndTime)
	assert.Equal(t, dom.StatusFinished, updated.Status, "full update must not touch status")
}

func TestUpdateNotOwned(t *testing.T) {
	svc := newTaskSvc()

	created, err := svc.Create(context.Background(), 1, "mine", base, base.Add(time.Hour), 1)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), 2, created.ID, "stolen", base, base.Add(time.Hour), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetStatusRejectsUnknownValue(t *testing.T) {
	svc := newTaskSvc()

	created, err := svc.Create(context.Background(), 1, "task", base, base.Add(time.Hour), 1)
	require.NoError(t, err)

	_, err = svc.SetStatus(context.Background(), 1, created.ID, "done")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// The task must be unchanged.
	list, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, dom.StatusPending, list[0].Status)
	assert.Equal(t, created.EndTime, list[0].EndTime)
}

func TestSetStatusFinishedStampsEndTime(t *testing.T) {
	svc := newTaskSvc()

	// End time far in the future; finishing must overwrite it with "now".
	created, err := svc.Create(context.Background(), 1, "task", base, base.Add(1000*time.Hour), 1)
	require.NoError(t, err)

	finished, err := svc.SetStatus(context.Background(), 1, created.ID, dom.StatusFinished)
	require.NoError(t, err)

	assert.Equal(t, dom.StatusFinished, finished.Status)
	assert.WithinDuration(t, time.Now().UTC(), finished.EndTime, 2*time.Second)
}

func TestSetStatusBackToPendingKeepsEndTime(t *testing.T) {
	svc := newTaskSvc()

	created, err := svc.Create(context.Background(), 1, "task", base, base.Add(time.Hour), 1)
	require.NoError(t, err)
	finished, err := svc.SetStatus(context.Background(), 1, created.ID, dom.StatusFinished)
	require.NoError(t, err)

	reopened, err := svc.SetStatus(context.Background(), 1, created.ID, dom.StatusPending)
	require.NoError(t, err)

	assert.Equal(t, dom.StatusPending, reopened.Status)
	assert.Equal(t, finished.EndTime, reopened.EndTime)
}

func TestDeleteReturnsRemovedTask(t *testing.T) {
	svc := newTaskSvc()

	created, err := svc.Create(context.Background(), 1, "task", base, base.Add(time.Hour), 1)
	require.NoError(t, err)

	removed, err := svc.Delete(context.Background(), 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)

	_, err = svc.Delete(context.Background(), 1, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteNotOwned(t *testing.T) {
	svc := newTaskSvc()

	created, err := svc.Create(context.Background(), 1, "mine", base, base.Add(time.Hour), 1)
	require.NoError(t, err)

	_, err = svc.Delete(context.Background(), 2, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Still there for the owner.
	list, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
