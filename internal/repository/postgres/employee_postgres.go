package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"promocodeapi/internal/model"
	"promocodeapi/internal/repository"
)

// EmployeePostgres is a PostgreSQL implementation of repository.Repository[model.Employee].
// Role links are stored in employee_roles with an explicit position so that
// the order of an employee's roles survives a round trip.
type EmployeePostgres struct {
	db *sql.DB
}

// NewEmployeePostgres creates a new EmployeePostgres repository.
func NewEmployeePostgres(db *sql.DB) *EmployeePostgres {
	return &EmployeePostgres{db: db}
}

var _ repository.Repository[model.Employee] = (*EmployeePostgres)(nil)

const selectEmployees = `
	SELECT e.id, e.email, e.full_name, e.applied_promocodes_count, r.id, r.name, r.description
	FROM employees e
	LEFT JOIN employee_roles er ON er.employee_id = e.id
	LEFT JOIN roles r ON r.id = er.role_id
`

// GetAll returns every employee ordered by creation time.
func (r *EmployeePostgres) GetAll(ctx context.Context) ([]model.Employee, error) {
	const q = selectEmployees + `ORDER BY e.created_at, e.id, er.position`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// GetByID fetches a single employee with its roles.
func (r *EmployeePostgres) GetByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	const q = selectEmployees + `WHERE e.id = $1 ORDER BY er.position`
	rows, err := r.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := scanEmployees(rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, repository.ErrNotFound
	}
	return &items[0], nil
}

// Create inserts the employee and links its roles in one transaction.
func (r *EmployeePostgres) Create(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	out := *e
	if out.ID == uuid.Nil {
		out.ID = uuid.New()
	}

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		const q = `
			INSERT INTO employees (id, email, full_name, applied_promocodes_count, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`
		if _, err := tx.ExecContext(ctx, q,
			out.ID,
			out.Email,
			out.FullName,
			out.AppliedPromocodesCount,
			time.Now().UTC(),
		); err != nil {
			return translateError(err)
		}

		roles, err := linkRoles(ctx, tx, out.ID, out.Roles)
		if err != nil {
			return err
		}
		out.Roles = roles
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update overwrites the employee's fields and replaces its role links.
func (r *EmployeePostgres) Update(ctx context.Context, id uuid.UUID, e *model.Employee) (*model.Employee, error) {
	out := *e
	out.ID = id

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		const q = `
			UPDATE employees
			SET email = $2, full_name = $3, applied_promocodes_count = $4
			WHERE id = $1
		`
		res, err := tx.ExecContext(ctx, q, out.ID, out.Email, out.FullName, out.AppliedPromocodesCount)
		if err != nil {
			return translateError(err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return repository.ErrNotFound
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM employee_roles WHERE employee_id = $1`, out.ID); err != nil {
			return err
		}

		roles, err := linkRoles(ctx, tx, out.ID, out.Roles)
		if err != nil {
			return err
		}
		out.Roles = roles
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Remove deletes an employee by ID. It does not return an error if the row does not exist.
// Role links are removed by the ON DELETE CASCADE constraint.
func (r *EmployeePostgres) Remove(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM employees WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

func (r *EmployeePostgres) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// linkRoles resolves every role by name, inserting unknown names, and records
// its position for the employee. Existing role rows are never modified.
func linkRoles(ctx context.Context, tx *sql.Tx, employeeID uuid.UUID, roles []model.Role) ([]model.Role, error) {
	const upsertRole = `
		INSERT INTO roles (id, name, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, description
	`
	const insertLink = `
		INSERT INTO employee_roles (employee_id, role_id, position)
		VALUES ($1, $2, $3)
	`

	out := make([]model.Role, 0, len(roles))
	for i, role := range roles {
		id := role.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		err := tx.QueryRowContext(ctx, upsertRole, id, role.Name, role.Description).Scan(&role.ID, &role.Description)
		if err != nil {
			return nil, fmt.Errorf("resolve role %q: %w", role.Name, translateError(err))
		}
		if _, err := tx.ExecContext(ctx, insertLink, employeeID, role.ID, i); err != nil {
			return nil, fmt.Errorf("link role %q: %w", role.Name, err)
		}
		out = append(out, role)
	}
	return out, nil
}

// scanEmployees folds joined employee/role rows into employees, preserving row order.
func scanEmployees(rows *sql.Rows) ([]model.Employee, error) {
	items := make([]model.Employee, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var (
			e        model.Employee
			roleID   uuid.NullUUID
			roleName sql.NullString
			roleDesc sql.NullString
		)
		if err := rows.Scan(
			&e.ID,
			&e.Email,
			&e.FullName,
			&e.AppliedPromocodesCount,
			&roleID,
			&roleName,
			&roleDesc,
		); err != nil {
			return nil, err
		}

		i, ok := index[e.ID]
		if !ok {
			e.Roles = make([]model.Role, 0)
			items = append(items, e)
			i = len(items) - 1
			index[e.ID] = i
		}
		if roleID.Valid {
			items[i].Roles = append(items[i].Roles, model.Role{
				ID:          roleID.UUID,
				Name:        roleName.String,
				Description: roleDesc.String,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

