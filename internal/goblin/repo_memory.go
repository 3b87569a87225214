package goblin

import (
	"context"
	"sort"
	"sync"
)

type Repository interface {
	Add(ctx context.Context, g Goblin) (Goblin, error)
	Get(ctx context.Context, id string) (Goblin, bool, error)
	List(ctx context.Context) ([]Goblin, error)
	Update(ctx context.Context, g Goblin) (Goblin, error)
	UpdateMany(ctx context.Context, gs []Goblin) error
}

type MemoryRepo struct {
	mu sync.RWMutex
	m  map[string]Goblin
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{m: map[string]Goblin{}}
}

func (r *MemoryRepo) Seed(ctx context.Context, gs []Goblin) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range gs {
		r.m[g.ID] = g
	}
	return nil
}

func (r *MemoryRepo) Add(ctx context.Context, g Goblin) (Goblin, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	r.m[g.ID] = g
	return g, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id string) (Goblin, bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.m[id]
	return g, ok, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Goblin, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Goblin, 0, len(r.m))
	for _, g := range r.m {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, g Goblin) (Goblin, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	r.m[g.ID] = g
	return g, nil
}

func (r *MemoryRepo) UpdateMany(ctx context.Context, gs []Goblin) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range gs {
		r.m[g.ID] = g
	}
	return nil
}
