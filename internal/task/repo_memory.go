package task

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

type Repository interface {
	Create(ctx context.Context, t Task) (Task, error)
	Get(ctx context.Context, id string) (Task, bool, error)
	List(ctx context.Context) ([]Task, error)
	ListByStatus(ctx context.Context, status Status) ([]Task, error)
	Update(ctx context.Context, t Task) (Task, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type MemoryRepo struct {
	mu    sync.RWMutex
	tasks map[string]Task
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{tasks: make(map[string]Task)}
}

func (r *MemoryRepo) Create(ctx context.Context, t Task) (Task, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[t.ID] = t
	return t, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id string) (Task, bool, error) {
	_ = ctx
	r.mu.RLock()
	t, ok := r.tasks[id]
	r.mu.RUnlock()

	return t, ok, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Task, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out, nil
}

func (r *MemoryRepo) ListByStatus(ctx context.Context, status Status) ([]Task, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Task, 0)
	for _, t := range r.tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	if status == StatusCompleted {
		// Completed view: most recent completion first
		sort.Slice(out, func(i, j int) bool {
			ti, tj := out[i].CompletedAt, out[j].CompletedAt
			switch {
			case ti == nil:
				return false
			case tj == nil:
				return true
			}
			return ti.After(*tj)
		})
	} else {
		sort.Slice(out, func(i, j int) bool { return Less(out[i], out[j]) })
	}
	return out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, t Task) (Task, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[t.ID]; !ok {
		return Task{}, fmt.Errorf("task not found: %s", t.ID)
	}
	r.tasks[t.ID] = t
	return t, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) (bool, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return false, nil
	}
	delete(r.tasks, id)
	return true, nil
}
