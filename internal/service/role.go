package service

import (
	"context"

	"promocodeapi/internal/model"
	"promocodeapi/internal/repository"
)

// RoleService exposes the roles an employee can be assigned.
type RoleService interface {
	List(ctx context.Context) ([]RoleItemResponse, error)
}

type roleService struct {
	repo repository.Repository[model.Role]
}

// NewRoleService constructs a new RoleService.
func NewRoleService(repo repository.Repository[model.Role]) RoleService {
	return &roleService{repo: repo}
}

func (s *roleService) List(ctx context.Context) ([]RoleItemResponse, error) {
	roles, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]RoleItemResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, RoleItemResponse{ID: r.ID, Name: r.Name, Description: r.Description})
	}
	return out, nil
}
