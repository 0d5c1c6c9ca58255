package domain

import "time"

// Task statuses. A task is created pending and may be flipped between
// pending and finished; no other values are accepted at the boundary.
const (
	StatusPending  = "pending"
	StatusFinished = "finished"
)

// Task is the domain entity for a unit of work owned by exactly one user.
// It does not depend on Gin or Postgres.
type Task struct {
	ID        int64
	UserID    int64
	Title     string
	Priority  int
	Status    string
	StartTime time.Time
	EndTime   time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
