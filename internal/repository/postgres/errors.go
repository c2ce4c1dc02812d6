package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"promocodeapi/internal/repository"
)

const uniqueViolation = "23505"

// translateError maps driver errors onto repository sentinels.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrAlreadyExists
	}
	return err
}
