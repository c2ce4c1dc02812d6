package memory

import (
	"github.com/google/uuid"

	"promocodeapi/internal/model"
)

var (
	adminRole = model.Role{
		ID:          uuid.MustParse("53729686-a368-4eeb-8bfa-cc69b6050d02"),
		Name:        "Admin",
		Description: "Administrator",
	}
	partnerManagerRole = model.Role{
		ID:          uuid.MustParse("b0ae7aac-5493-45cd-ad16-87426a5e7665"),
		Name:        "PartnerManager",
		Description: "Partner manager",
	}
)

// SeedRoles returns the default roles available on a fresh installation.
func SeedRoles() []model.Role {
	return []model.Role{adminRole, partnerManagerRole}
}

// SeedEmployees returns demo employees referencing SeedRoles.
func SeedEmployees() []model.Employee {
	return []model.Employee{
		{
			ID:                     uuid.MustParse("451533d5-d8d5-4a11-9c7b-eb9f14e1a32f"),
			Email:                  "owner@somemail.ru",
			FullName:               "Ivan Sergeev",
			Roles:                  []model.Role{adminRole},
			AppliedPromocodesCount: 5,
		},
		{
			ID:                     uuid.MustParse("f766e2bf-340a-46ea-bff3-f1700b435895"),
			Email:                  "andreev@somemail.ru",
			FullName:               "Petr Andreev",
			Roles:                  []model.Role{partnerManagerRole},
			AppliedPromocodesCount: 10,
		},
	}
}

// NewEmployeeRepository returns an employee repository preloaded with SeedEmployees.
func NewEmployeeRepository() *Repository[model.Employee, *model.Employee] {
	return New[model.Employee](SeedEmployees()...)
}

// NewRoleRepository returns a role repository preloaded with SeedRoles.
func NewRoleRepository() *Repository[model.Role, *model.Role] {
	return New[model.Role](SeedRoles()...)
}
