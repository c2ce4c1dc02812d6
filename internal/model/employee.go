package model

import "github.com/google/uuid"

// Employee is an administrator of the promo code platform.
// Its roles are held by value in the order they were assigned.
type Employee struct {
	ID                     uuid.UUID `json:"id"`
	Email                  string    `json:"email"`
	FullName               string    `json:"fullName"`
	Roles                  []Role    `json:"roles"`
	AppliedPromocodesCount int       `json:"appliedPromocodesCount"`
}

// GetID returns the employee identifier.
func (e *Employee) GetID() uuid.UUID { return e.ID }

// SetID assigns the employee identifier.
func (e *Employee) SetID(id uuid.UUID) { e.ID = id }
