package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (memory, postgres) inside this directory.

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no entity matches the requested identifier.
	ErrNotFound = errors.New("entity not found")
	// ErrAlreadyExists is returned by Create when the identifier or a unique field is taken.
	ErrAlreadyExists = errors.New("entity already exists")
)

// Repository defines persistence operations for an entity type keyed by UUID.
// No business logic here, strictly persistence operations.
type Repository[T any] interface {
	// GetAll returns every entity in the repository's natural order.
	GetAll(ctx context.Context) ([]T, error)

	// GetByID returns the entity with the given ID or ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)

	// Create stores a new entity and returns the stored form.
	Create(ctx context.Context, entity *T) (*T, error)

	// Update replaces the fields of the entity identified by id.
	// The id argument is authoritative over any ID carried by entity.
	// Returns ErrNotFound if no such entity exists.
	Update(ctx context.Context, id uuid.UUID, entity *T) (*T, error)

	// Remove deletes an entity by ID. It returns nil if the entity did not exist.
	Remove(ctx context.Context, id uuid.UUID) error
}
