package service

import (
	"github.com/google/uuid"

	"promocodeapi/internal/model"
)

// EmployeeShortResponse is the list projection of an employee.
type EmployeeShortResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"fullName"`
}

// EmployeeResponse is the detailed projection of an employee.
type EmployeeResponse struct {
	ID                     uuid.UUID     `json:"id"`
	Email                  string        `json:"email"`
	FullName               string        `json:"fullName"`
	Roles                  []RoleSummary `json:"roles"`
	AppliedPromocodesCount int           `json:"appliedPromocodesCount"`
}

// RoleSummary is a role as embedded in EmployeeResponse.
type RoleSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RoleItemResponse is the roles listing projection.
type RoleItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// Short drops roles and the promo code counter.
func (r *EmployeeResponse) Short() EmployeeShortResponse {
	return EmployeeShortResponse{ID: r.ID, Email: r.Email, FullName: r.FullName}
}

func newEmployeeShortResponse(e model.Employee) EmployeeShortResponse {
	return EmployeeShortResponse{
		ID:       e.ID,
		Email:    e.Email,
		FullName: e.FullName,
	}
}

func newEmployeeResponse(e model.Employee) *EmployeeResponse {
	roles := make([]RoleSummary, 0, len(e.Roles))
	for _, r := range e.Roles {
		roles = append(roles, RoleSummary{Name: r.Name, Description: r.Description})
	}
	return &EmployeeResponse{
		ID:                     e.ID,
		Email:                  e.Email,
		FullName:               e.FullName,
		Roles:                  roles,
		AppliedPromocodesCount: e.AppliedPromocodesCount,
	}
}
