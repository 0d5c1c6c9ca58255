// Package stats computes the dashboard summary over a user's task list.
// The computation is a pure reduction: given the same tasks and the same
// reference time it always produces the same summary, and nothing is cached.
package stats

import (
	"math"
	"time"

	dom "github.com/Pritish2005/task-management-app/internal/domain"
)

// Priorities is the valid priority range; bucketed fields have one entry
// per priority, indexed 1..Priorities.
const Priorities = 5

// Bucket aggregates the pending tasks of a single priority.
type Bucket struct {
	// PendingTasks counts pending tasks with this priority.
	PendingTasks int `json:"pendingTasks"`
	// TimeLapsed sums hours from each task's start time to now. Tasks that
	// have not started yet contribute negative hours.
	TimeLapsed float64 `json:"timeLapsed"`
	// TimeToFinish sums hours from now to each task's end time; negative
	// when a task is overdue.
	TimeToFinish float64 `json:"timeToFinish"`
}

// Summary is the full set of dashboard statistics.
type Summary struct {
	TotalTasks          int     `json:"totalTasks"`
	CompletedPercentage int     `json:"completedPercentage"`
	PendingPercentage   int     `json:"pendingPercentage"`
	AvgCompletionTime   float64 `json:"avgCompletionTime"`

	// ByPriority is indexed by priority 1..5.
	ByPriority map[int]Bucket `json:"byPriority"`

	TotalTimeLapsed   float64 `json:"totalTimeLapsed"`
	TotalTimeToFinish float64 `json:"totalTimeToFinish"`
}

// Compute derives the summary from the task list at the given reference
// time. All percentage and average fields are 0 when their denominator is
// zero; per-bucket sums are rounded to one decimal and the totals are the
// sums of the rounded bucket values.
func Compute(tasks []dom.Task, now time.Time) Summary {
	s := Summary{ByPriority: make(map[int]Bucket, Priorities)}
	s.TotalTasks = len(tasks)

	var finished, pending int
	var completionHours float64
	lapsed := make(map[int]float64, Priorities)
	toFinish := make(map[int]float64, Priorities)
	counts := make(map[int]int, Priorities)

	for _, t := range tasks {
		switch t.Status {
		case dom.StatusFinished:
			finished++
			completionHours += t.EndTime.Sub(t.StartTime).Hours()
		case dom.StatusPending:
			pending++
			counts[t.Priority]++
			lapsed[t.Priority] += now.Sub(t.StartTime).Hours()
			toFinish[t.Priority] += t.EndTime.Sub(now).Hours()
		}
	}

	if s.TotalTasks > 0 {
		s.CompletedPercentage = int(math.Round(100 * float64(finished) / float64(s.TotalTasks)))
		s.PendingPercentage = int(math.Round(100 * float64(pending) / float64(s.TotalTasks)))
	}
	if finished > 0 {
		s.AvgCompletionTime = round1(completionHours / float64(finished))
	}

	for p := 1; p <= Priorities; p++ {
		b := Bucket{
			PendingTasks: counts[p],
			TimeLapsed:   round1(lapsed[p]),
			TimeToFinish: round1(toFinish[p]),
		}
		s.ByPriority[p] = b
		s.TotalTimeLapsed += b.TimeLapsed
		s.TotalTimeToFinish += b.TimeToFinish
	}
	return s
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
