package repo

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	dom "github.com/Pritish2005/task-management-app/internal/domain"
)

// ErrDuplicate is returned by the in-memory repos where Postgres would
// raise a unique violation.
var ErrDuplicate = errors.New("duplicate key")

// IsDuplicate reports whether err is a duplicate-key failure from either
// backend.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate) || IsUniqueViolation(err)
}

// MemoryUserRepo is an in-memory UserRepo used in tests. Missing rows are
// reported as pgx.ErrNoRows so services behave identically on both backends.
type MemoryUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]dom.User
}

// NewMemoryUserRepo returns an empty MemoryUserRepo.
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{nextID: 1, users: make(map[int64]dom.User)}
}

func (r *MemoryUserRepo) GetByEmail(_ context.Context, email string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r *MemoryUserRepo) Create(_ context.Context, name, email, passwordHash string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return dom.User{}, ErrDuplicate
		}
	}
	u := dom.User{
		ID:           r.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.nextID++
	r.users[u.ID] = u
	return u, nil
}

// MemoryTaskRepo is an in-memory TaskRepo used in tests.
type MemoryTaskRepo struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]dom.Task
}

// NewMemoryTaskRepo returns an empty MemoryTaskRepo.
func NewMemoryTaskRepo() *MemoryTaskRepo {
	return &MemoryTaskRepo{nextID: 1, tasks: make(map[int64]dom.Task)}
}

func (r *MemoryTaskRepo) Create(_ context.Context, t dom.Task) (dom.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	t.ID = r.nextID
	t.CreatedAt = now
	t.UpdatedAt = now
	r.nextID++
	r.tasks[t.ID] = t
	return t, nil
}

func (r *MemoryTaskRepo) ListByUser(_ context.Context, userID int64) ([]dom.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []dom.Task
	for _, t := range r.tasks {
		if t.UserID == userID {
			list = append(list, t)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].StartTime.Before(list[j].StartTime) })
	return list, nil
}

func (r *MemoryTaskRepo) GetByID(_ context.Context, userID, id int64) (dom.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return dom.Task{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *MemoryTaskRepo) Update(_ context.Context, userID, id int64, title string, start, end time.Time, priority int) (dom.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return dom.Task{}, pgx.ErrNoRows
	}
	t.Title = title
	t.StartTime = start
	t.EndTime = end
	t.Priority = priority
	t.UpdatedAt = time.Now().UTC()
	r.tasks[id] = t
	return t, nil
}

func (r *MemoryTaskRepo) SetStatus(_ context.Context, userID, id int64, status string, endTime *time.Time) (dom.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return dom.Task{}, pgx.ErrNoRows
	}
	t.Status = status
	if endTime != nil {
		t.EndTime = *endTime
	}
	t.UpdatedAt = time.Now().UTC()
	r.tasks[id] = t
	return t, nil
}

func (r *MemoryTaskRepo) Delete(_ context.Context, userID, id int64) (dom.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return dom.Task{}, pgx.ErrNoRows
	}
	delete(r.tasks, id)
	return t, nil
}
