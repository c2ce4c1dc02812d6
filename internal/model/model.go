package model

// Package model contains domain models/data structures.
// Keep it free of persistence concerns; no business logic here.

import "github.com/google/uuid"

// Entity is implemented by pointers to domain models that are keyed by a UUID.
type Entity interface {
	GetID() uuid.UUID
	SetID(id uuid.UUID)
}
