package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"promocodeapi/internal/model"
	"promocodeapi/internal/repository"
)

// Repository is an in-memory implementation of repository.Repository.
// Entities are kept in insertion order. It is safe for concurrent use.
type Repository[T any, PT interface {
	*T
	model.Entity
}] struct {
	mu    sync.RWMutex
	items []T
}

var (
	_ repository.Repository[model.Employee] = (*Repository[model.Employee, *model.Employee])(nil)
	_ repository.Repository[model.Role]     = (*Repository[model.Role, *model.Role])(nil)
)

// New creates a repository holding a copy of the given entities.
func New[T any, PT interface {
	*T
	model.Entity
}](seed ...T) *Repository[T, PT] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &Repository[T, PT]{items: items}
}

// GetAll returns a snapshot of all entities.
func (r *Repository[T, PT]) GetAll(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *Repository[T, PT]) GetByID(_ context.Context, id uuid.UUID) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	v := r.items[i]
	return &v, nil
}

// Create appends the entity, assigning a new ID when it has none.
func (r *Repository[T, PT]) Create(_ context.Context, entity *T) (*T, error) {
	v := *entity
	if PT(&v).GetID() == uuid.Nil {
		PT(&v).SetID(uuid.New())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(PT(&v).GetID()) >= 0 {
		return nil, repository.ErrAlreadyExists
	}
	r.items = append(r.items, v)

	out := v
	return &out, nil
}

// Update replaces the stored entity in place, keeping its position.
func (r *Repository[T, PT]) Update(_ context.Context, id uuid.UUID, entity *T) (*T, error) {
	v := *entity
	PT(&v).SetID(id)

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	r.items[i] = v

	out := v
	return &out, nil
}

// Remove deletes the entity if present.
func (r *Repository[T, PT]) Remove(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		r.items = append(r.items[:i], r.items[i+1:]...)
	}
	return nil
}

// indexOf must be called with r.mu held.
func (r *Repository[T, PT]) indexOf(id uuid.UUID) int {
	for i := range r.items {
		if PT(&r.items[i]).GetID() == id {
			return i
		}
	}
	return -1
}
