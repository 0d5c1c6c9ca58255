package repo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	dom "github.com/Pritish2005/task-management-app/internal/domain"
)

// TaskRepo provides task persistence. Every operation is scoped by the
// owning user id, so an ownership miss reads exactly like absence.
type TaskRepo interface {
	Create(ctx context.Context, t dom.Task) (dom.Task, error)
	ListByUser(ctx context.Context, userID int64) ([]dom.Task, error)
	GetByID(ctx context.Context, userID, id int64) (dom.Task, error)
	Update(ctx context.Context, userID, id int64, title string, start, end time.Time, priority int) (dom.Task, error)
	SetStatus(ctx context.Context, userID, id int64, status string, endTime *time.Time) (dom.Task, error)
	Delete(ctx context.Context, userID, id int64) (dom.Task, error)
}

const taskColumns = `id, user_id, title, priority, status, start_time, end_time, created_at, updated_at`

// PGTaskRepo implements TaskRepo with Postgres.
type PGTaskRepo struct {
	db *pgxpool.Pool
}

// NewPGTaskRepo returns a new PGTaskRepo.
func NewPGTaskRepo(db *pgxpool.Pool) *PGTaskRepo {
	return &PGTaskRepo{db: db}
}

func (r *PGTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	query := `
		INSERT INTO tasks (user_id, title, priority, status, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + taskColumns
	var out dom.Task
	err := r.db.QueryRow(ctx, query, t.UserID, t.Title, t.Priority, t.Status, t.StartTime, t.EndTime).Scan(
		&out.ID, &out.UserID, &out.Title, &out.Priority, &out.Status,
		&out.StartTime, &out.EndTime, &out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGTaskRepo) ListByUser(ctx context.Context, userID int64) ([]dom.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks WHERE user_id = $1 ORDER BY start_time ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Task
	for rows.Next() {
		var t dom.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Priority, &t.Status,
			&t.StartTime, &t.EndTime, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTaskRepo) GetByID(ctx context.Context, userID, id int64) (dom.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks WHERE id = $1 AND user_id = $2`
	var t dom.Task
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&t.ID, &t.UserID, &t.Title, &t.Priority, &t.Status,
		&t.StartTime, &t.EndTime, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *PGTaskRepo) Update(ctx context.Context, userID, id int64, title string, start, end time.Time, priority int) (dom.Task, error) {
	query := `
		UPDATE tasks SET title = $3, start_time = $4, end_time = $5, priority = $6, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + taskColumns
	var t dom.Task
	err := r.db.QueryRow(ctx, query, id, userID, title, start, end, priority).Scan(
		&t.ID, &t.UserID, &t.Title, &t.Priority, &t.Status,
		&t.StartTime, &t.EndTime, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// SetStatus updates the status and, when endTime is non-nil, overwrites the
// task's end time with it.
func (r *PGTaskRepo) SetStatus(ctx context.Context, userID, id int64, status string, endTime *time.Time) (dom.Task, error) {
	query := `
		UPDATE tasks SET status = $3, end_time = COALESCE($4, end_time), updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + taskColumns
	var t dom.Task
	err := r.db.QueryRow(ctx, query, id, userID, status, endTime).Scan(
		&t.ID, &t.UserID, &t.Title, &t.Priority, &t.Status,
		&t.StartTime, &t.EndTime, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// Delete removes the task and returns the removed record.
func (r *PGTaskRepo) Delete(ctx context.Context, userID, id int64) (dom.Task, error) {
	query := `
		DELETE FROM tasks WHERE id = $1 AND user_id = $2
		RETURNING ` + taskColumns
	var t dom.Task
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&t.ID, &t.UserID, &t.Title, &t.Priority, &t.Status,
		&t.StartTime, &t.EndTime, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}
