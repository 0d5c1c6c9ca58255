package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "github.com/Pritish2005/task-management-app/internal/domain"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestComputeEmptyList(t *testing.T) {
	s := Compute(nil, testNow)

	assert.Equal(t, 0, s.TotalTasks)
	assert.Equal(t, 0, s.CompletedPercentage)
	assert.Equal(t, 0, s.PendingPercentage)
	assert.Equal(t, 0.0, s.AvgCompletionTime)
	assert.Equal(t, 0.0, s.TotalTimeLapsed)
	assert.Equal(t, 0.0, s.TotalTimeToFinish)
	require.Len(t, s.ByPriority, Priorities)
	for p := 1; p <= Priorities; p++ {
		assert.Equal(t, Bucket{}, s.ByPriority[p])
	}
}

func TestComputeSinglePendingTask(t *testing.T) {
	tasks := []dom.Task{
		{
			Priority:  1,
			Status:    dom.StatusPending,
			StartTime: testNow.Add(-2 * time.Hour),
			EndTime:   testNow.Add(3 * time.Hour),
		},
	}

	s := Compute(tasks, testNow)

	assert.Equal(t, 1, s.TotalTasks)
	assert.Equal(t, 100, s.PendingPercentage)
	assert.Equal(t, 0, s.CompletedPercentage)
	assert.Equal(t, 1, s.ByPriority[1].PendingTasks)
	assert.Equal(t, 2.0, s.ByPriority[1].TimeLapsed)
	assert.Equal(t, 3.0, s.ByPriority[1].TimeToFinish)
	assert.Equal(t, 2.0, s.TotalTimeLapsed)
	assert.Equal(t, 3.0, s.TotalTimeToFinish)
}

func TestComputePercentagesRound(t *testing.T) {
	// 1 finished of 3 -> 33.33 rounds to 33; 2 pending -> 66.67 rounds to 67.
	tasks := []dom.Task{
		{Priority: 2, Status: dom.StatusFinished, StartTime: testNow.Add(-4 * time.Hour), EndTime: testNow.Add(-1 * time.Hour)},
		{Priority: 2, Status: dom.StatusPending, StartTime: testNow.Add(-1 * time.Hour), EndTime: testNow.Add(1 * time.Hour)},
		{Priority: 3, Status: dom.StatusPending, StartTime: testNow.Add(-1 * time.Hour), EndTime: testNow.Add(2 * time.Hour)},
	}

	s := Compute(tasks, testNow)

	assert.Equal(t, 3, s.TotalTasks)
	assert.Equal(t, 33, s.CompletedPercentage)
	assert.Equal(t, 67, s.PendingPercentage)
}

func TestComputeAvgCompletionTime(t *testing.T) {
	// Finished in 3h and 2h -> mean 2.5h. Pending tasks must not count.
	tasks := []dom.Task{
		{Priority: 1, Status: dom.StatusFinished, StartTime: testNow.Add(-5 * time.Hour), EndTime: testNow.Add(-2 * time.Hour)},
		{Priority: 1, Status: dom.StatusFinished, StartTime: testNow.Add(-3 * time.Hour), EndTime: testNow.Add(-1 * time.Hour)},
		{Priority: 1, Status: dom.StatusPending, StartTime: testNow.Add(-100 * time.Hour), EndTime: testNow.Add(100 * time.Hour)},
	}

	s := Compute(tasks, testNow)

	assert.Equal(t, 2.5, s.AvgCompletionTime)
}

func TestComputeOverdueNegativeTimeToFinish(t *testing.T) {
	tasks := []dom.Task{
		{Priority: 5, Status: dom.StatusPending, StartTime: testNow.Add(-3 * time.Hour), EndTime: testNow.Add(-90 * time.Minute)},
	}

	s := Compute(tasks, testNow)

	assert.Equal(t, -1.5, s.ByPriority[5].TimeToFinish)
	assert.Equal(t, -1.5, s.TotalTimeToFinish)
	assert.Equal(t, 3.0, s.TotalTimeLapsed)
}

func TestComputeBucketsByPriority(t *testing.T) {
	tasks := []dom.Task{
		{Priority: 1, Status: dom.StatusPending, StartTime: testNow.Add(-1 * time.Hour), EndTime: testNow.Add(1 * time.Hour)},
		{Priority: 1, Status: dom.StatusPending, StartTime: testNow.Add(-2 * time.Hour), EndTime: testNow.Add(2 * time.Hour)},
		{Priority: 4, Status: dom.StatusPending, StartTime: testNow.Add(-30 * time.Minute), EndTime: testNow.Add(30 * time.Minute)},
		{Priority: 4, Status: dom.StatusFinished, StartTime: testNow.Add(-2 * time.Hour), EndTime: testNow.Add(-1 * time.Hour)},
	}

	s := Compute(tasks, testNow)

	assert.Equal(t, 2, s.ByPriority[1].PendingTasks)
	assert.Equal(t, 3.0, s.ByPriority[1].TimeLapsed)
	assert.Equal(t, 3.0, s.ByPriority[1].TimeToFinish)
	assert.Equal(t, 1, s.ByPriority[4].PendingTasks)
	assert.Equal(t, 0.5, s.ByPriority[4].TimeLapsed)
	assert.Equal(t, 0.5, s.ByPriority[4].TimeToFinish)
	assert.Equal(t, 0, s.ByPriority[2].PendingTasks)
	assert.Equal(t, 3.5, s.TotalTimeLapsed)
	assert.Equal(t, 3.5, s.TotalTimeToFinish)
}

func TestComputeDeterministic(t *testing.T) {
	tasks := []dom.Task{
		{Priority: 2, Status: dom.StatusPending, StartTime: testNow.Add(-7 * time.Hour), EndTime: testNow.Add(11 * time.Hour)},
		{Priority: 3, Status: dom.StatusFinished, StartTime: testNow.Add(-9 * time.Hour), EndTime: testNow.Add(-4 * time.Hour)},
	}

	first := Compute(tasks, testNow)
	second := Compute(tasks, testNow)

	assert.Equal(t, first, second)
}
