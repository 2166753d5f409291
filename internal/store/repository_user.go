package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/models"
	"github.com/jackc/pgerrcode"
)

// userColumns is the canonical column order every user query selects and
// every scanUser call expects.
const userColumns = "id, username, email, first_name, middle_name, last_name, hashed_password, role, disabled, temp_pwd, created_at, updated_at"

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and credential replacement against
// the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email,
		&u.FirstName, &u.MiddleName, &u.LastName,
		&u.HashedPassword, &u.Role, &u.Disabled, &u.TempPwd,
		&u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt, UpdatedAt).
//
// The caller is responsible for hashing the credential; this method never
// sees a plaintext password.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → classified via classifyWriteError.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert(user.TableName()).
		Columns("username", "email", "first_name", "middle_name", "last_name", "hashed_password", "role", "disabled", "temp_pwd").
		Values(user.Username, user.Email, user.FirstName, user.MiddleName, user.LastName, user.HashedPassword, user.Role, user.Disabled, user.TempPwd).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("user insert failed")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUsernameAlreadyExists
		}
		return models.User{}, classifyWriteError(err)
	}

	return created, nil
}

// GetUserByID retrieves a user record by its integer identifier.
//
// Returns [ErrNoUserWasFound] when no record matches, so a deleted account
// referenced by a still-valid token resolves to "no user" rather than a
// driver error.
func (r *userRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(userColumns).
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUserByID").Int64("id", id).Msg("user lookup failed")
		return models.User{}, notFoundOr(err, ErrNoUserWasFound)
	}

	return user, nil
}

// FindUserByUsername retrieves a user record whose username matches exactly.
// Returns [ErrNoUserWasFound] when no record matches.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(userColumns).
		From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Str("username", username).Msg("user lookup failed")
		return models.User{}, notFoundOr(err, ErrNoUserWasFound)
	}

	return user, nil
}

// FindUserByEmail retrieves a user record by contact address. The password
// reset flow uses it to resolve the account referenced by a reset token.
// Returns [ErrNoUserWasFound] when no record matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(userColumns).
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("user lookup by email failed")
		return models.User{}, notFoundOr(err, ErrNoUserWasFound)
	}

	return user, nil
}

// GetAllUsers returns every user record ordered by identifier.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, _, err := psql.Select(userColumns).
		From("users").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("users query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// UpdateUser applies a partial update: only non-nil fields of update are
// written, and updated_at is always refreshed. Returns the canonical
// post-update record.
func (r *userRepository) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	qb := psql.Update("users").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userColumns)

	if update.Username != nil {
		qb = qb.Set("username", *update.Username)
	}
	if update.Email != nil {
		qb = qb.Set("email", *update.Email)
	}
	if update.FirstName != nil {
		qb = qb.Set("first_name", *update.FirstName)
	}
	if update.MiddleName != nil {
		qb = qb.Set("middle_name", *update.MiddleName)
	}
	if update.LastName != nil {
		qb = qb.Set("last_name", *update.LastName)
	}
	if update.Role != nil {
		qb = qb.Set("role", *update.Role)
	}
	if update.Disabled != nil {
		qb = qb.Set("disabled", *update.Disabled)
	}
	if update.TempPwd != nil {
		qb = qb.Set("temp_pwd", *update.TempPwd)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("id", id).Msg("user update failed")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUsernameAlreadyExists
		}
		return models.User{}, notFoundOr(err, ErrNoUserWasFound)
	}

	return user, nil
}

// UpdatePassword replaces the stored credential hash for the given account.
// The hash is opaque to this layer; hashing happens in the service.
func (r *userRepository) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("users").
		Set("hashed_password", hashedPassword).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Int64("id", id).Msg("password update failed")
		return classifyWriteError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// DeleteUser removes a user record and returns its last persisted state.
// Returns [ErrNoUserWasFound] when no record matches.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("users").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("id", id).Msg("user delete failed")
		return models.User{}, notFoundOr(err, ErrNoUserWasFound)
	}

	return user, nil
}
