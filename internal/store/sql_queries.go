package store

import (
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// psql builds every repository query with PostgreSQL $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// rowScanner abstracts *sql.Row and *sql.Rows for the shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

// classifyWriteError maps driver-level errors from INSERT/UPDATE statements
// to the package sentinels. Unique violations on the users table are handled
// separately by the user repository.
func classifyWriteError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation,
		pgerrcode.ForeignKeyViolation,
		pgerrcode.NotNullViolation,
		pgerrcode.CheckViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}

// notFoundOr converts sql.ErrNoRows to the given sentinel and wraps any
// other scan failure.
func notFoundOr(err error, sentinel error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel
	}
	return fmt.Errorf("%w: %w", ErrScanningRow, err)
}
