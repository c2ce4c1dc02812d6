package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"promocodeapi/internal/model"
	"promocodeapi/internal/repository"
)

// RolePostgres is a PostgreSQL implementation of repository.Repository[model.Role].
type RolePostgres struct {
	db *sql.DB
}

// NewRolePostgres creates a new RolePostgres repository.
func NewRolePostgres(db *sql.DB) *RolePostgres {
	return &RolePostgres{db: db}
}

var _ repository.Repository[model.Role] = (*RolePostgres)(nil)

func (r *RolePostgres) GetAll(ctx context.Context) ([]model.Role, error) {
	const q = `SELECT id, name, description FROM roles ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Role, 0)
	for rows.Next() {
		var role model.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description); err != nil {
			return nil, err
		}
		items = append(items, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *RolePostgres) GetByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	const q = `SELECT id, name, description FROM roles WHERE id = $1`
	var role model.Role
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&role.ID, &role.Name, &role.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &role, nil
}

func (r *RolePostgres) Create(ctx context.Context, role *model.Role) (*model.Role, error) {
	const q = `
		INSERT INTO roles (id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, name, description
	`
	id := role.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	var out model.Role
	if err := r.db.QueryRowContext(ctx, q, id, role.Name, role.Description).
		Scan(&out.ID, &out.Name, &out.Description); err != nil {
		return nil, translateError(err)
	}
	return &out, nil
}

func (r *RolePostgres) Update(ctx context.Context, id uuid.UUID, role *model.Role) (*model.Role, error) {
	const q = `
		UPDATE roles SET name = $2, description = $3
		WHERE id = $1
		RETURNING id, name, description
	`
	var out model.Role
	if err := r.db.QueryRowContext(ctx, q, id, role.Name, role.Description).
		Scan(&out.ID, &out.Name, &out.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &out, nil
}

// Remove deletes a role by ID. Missing rows are not an error.
func (r *RolePostgres) Remove(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM roles WHERE id = $1`, id)
	return err
}
