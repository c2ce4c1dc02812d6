package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"promocodeapi/internal/model"
	"promocodeapi/internal/repository"
)

var (
	ErrNotFound = errors.New("employee not found")
	ErrConflict = errors.New("employee already exists")
)

// EmployeeService defines the use cases for managing employees.
// Results are response projections; domain entities never leave the service.
type EmployeeService interface {
	// List returns the short projection of every employee in repository order.
	List(ctx context.Context) ([]EmployeeShortResponse, error)

	// Get returns the detailed projection of one employee or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*EmployeeResponse, error)

	// Create persists a new employee, generating its ID when absent.
	Create(ctx context.Context, e *model.Employee) (*EmployeeResponse, error)

	// Update overwrites the employee identified by id with the fields of e.
	Update(ctx context.Context, id uuid.UUID, e *model.Employee) (*EmployeeResponse, error)

	// Remove deletes an employee. Removing an unknown ID succeeds.
	Remove(ctx context.Context, id uuid.UUID) error
}

type employeeService struct {
	repo repository.Repository[model.Employee]
}

// NewEmployeeService constructs a new EmployeeService.
func NewEmployeeService(repo repository.Repository[model.Employee]) EmployeeService {
	return &employeeService{repo: repo}
}

func (s *employeeService) List(ctx context.Context) ([]EmployeeShortResponse, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]EmployeeShortResponse, 0, len(items))
	for _, e := range items {
		out = append(out, newEmployeeShortResponse(e))
	}
	return out, nil
}

func (s *employeeService) Get(ctx context.Context, id uuid.UUID) (*EmployeeResponse, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return newEmployeeResponse(*e), nil
}

func (s *employeeService) Create(ctx context.Context, e *model.Employee) (*EmployeeResponse, error) {
	in := *e
	if in.ID == uuid.Nil {
		in.ID = uuid.New()
	}
	stored, err := s.repo.Create(ctx, &in)
	if err != nil {
		return nil, translate(err)
	}
	return newEmployeeResponse(*stored), nil
}

func (s *employeeService) Update(ctx context.Context, id uuid.UUID, e *model.Employee) (*EmployeeResponse, error) {
	updated, err := s.repo.Update(ctx, id, e)
	if err != nil {
		return nil, translate(err)
	}
	return newEmployeeResponse(*updated), nil
}

func (s *employeeService) Remove(ctx context.Context, id uuid.UUID) error {
	return s.repo.Remove(ctx, id)
}

func translate(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrAlreadyExists):
		return ErrConflict
	default:
		return err
	}
}
