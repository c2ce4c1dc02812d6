package model

import "github.com/google/uuid"

// Role is a named set of permissions an employee can hold.
type Role struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

func (r *Role) GetID() uuid.UUID { return r.ID }

func (r *Role) SetID(id uuid.UUID) { r.ID = id }
