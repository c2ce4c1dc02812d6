package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"promocodeapi/internal/lib/logger/sl"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_roles",
		SQL: `CREATE TABLE IF NOT EXISTS roles (
  id          UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
  name        TEXT NOT NULL UNIQUE,
  description TEXT NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_table_employees",
		SQL: `CREATE TABLE IF NOT EXISTS employees (
  id                       UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  email                    TEXT        NOT NULL DEFAULT '',
  full_name                TEXT        NOT NULL DEFAULT '',
  applied_promocodes_count INTEGER     NOT NULL DEFAULT 0,
  created_at               TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_employee_roles",
		SQL: `CREATE TABLE IF NOT EXISTS employee_roles (
  employee_id UUID    NOT NULL REFERENCES employees (id) ON DELETE CASCADE,
  role_id     UUID    NOT NULL REFERENCES roles (id),
  position    INTEGER NOT NULL,
  PRIMARY KEY (employee_id, position)
);`,
	},
	{
		Name: "create_index_employees_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_employees_created_at ON employees (created_at);`,
	},
	{
		Name: "create_index_employee_roles_role_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_employee_roles_role_id ON employee_roles (role_id);`,
	},
	{
		Name: "seed_roles",
		SQL: `INSERT INTO roles (id, name, description) VALUES
  ('53729686-a368-4eeb-8bfa-cc69b6050d02', 'Admin', 'Administrator'),
  ('b0ae7aac-5493-45cd-ad16-87426a5e7665', 'PartnerManager', 'Partner manager')
ON CONFLICT DO NOTHING;`,
	},
}

// EnsureMigrated checks if the 'employees' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *slog.Logger, dbHost string) error {
	const op = "migration.EnsureMigrated"

	log = log.With(
		slog.String("op", op),
		slog.String("component", "database"),
		slog.String("db_host", dbHost),
	)
	start := time.Now()

	log.Info("db_migration_check", slog.String("status", "starting"))

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT to_regclass('public.employees') IS NOT NULL").Scan(&exists)
	if err != nil {
		log.Error("db_migration_failed",
			slog.String("status", "error"),
			sl.Err(err),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("%s: check sentinel table: %w", op, err)
	}

	if exists {
		log.Info("db_migration_skip",
			slog.String("status", "success"),
			slog.String("reason", "schema already exists"),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", slog.String("status", "in_progress"), slog.Int("steps", len(steps)))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				slog.String("status", "error"),
				slog.String("migration_step", step.Name),
				sl.Err(err),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("%s: step %s: %w", op, step.Name, err)
		}

		log.Debug("db_migration_step",
			slog.String("status", "success"),
			slog.String("migration_step", step.Name),
			slog.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		slog.String("status", "success"),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return nil
}
