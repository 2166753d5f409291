package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/models"
)

const evaluationResultColumns = "id, title, teacher_id, evaluation_id, admin_id, is_submitted, created_at, updated_at"

// evaluationResultRepository is the PostgreSQL-backed implementation of
// [EvaluationResultRepository]. Beyond plain CRUD it serves the filtered
// list queries the reporting endpoints need (by evaluation, by evaluation
// and submitting admin, by teacher).
type evaluationResultRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEvaluationResultRepository constructs an [EvaluationResultRepository]
// backed by the provided database connection and logger.
func NewEvaluationResultRepository(db *DB, logger *logger.Logger) EvaluationResultRepository {
	logger.Debug().Msg("creating evaluation result repository")
	return &evaluationResultRepository{
		db:     db,
		logger: logger,
	}
}

func scanEvaluationResult(row rowScanner) (models.EvaluationResult, error) {
	var e models.EvaluationResult
	err := row.Scan(
		&e.ID, &e.Title, &e.TeacherID, &e.EvaluationID, &e.AdminID,
		&e.IsSubmitted, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *evaluationResultRepository) Create(ctx context.Context, in models.EvaluationResultIn) (models.EvaluationResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("evaluation_results").
		Columns("title", "teacher_id", "evaluation_id", "admin_id", "is_submitted").
		Values(in.Title, in.TeacherID, in.EvaluationID, in.AdminID, in.IsSubmitted).
		Suffix("RETURNING " + evaluationResultColumns).
		ToSql()
	if err != nil {
		return models.EvaluationResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := scanEvaluationResult(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*evaluationResultRepository.Create").Msg("evaluation result insert failed")
		return models.EvaluationResult{}, classifyWriteError(err)
	}

	return result, nil
}

func (r *evaluationResultRepository) GetByID(ctx context.Context, id int64) (models.EvaluationResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(evaluationResultColumns).
		From("evaluation_results").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.EvaluationResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := scanEvaluationResult(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*evaluationResultRepository.GetByID").Int64("id", id).Msg("evaluation result lookup failed")
		return models.EvaluationResult{}, notFoundOr(err, ErrRecordNotFound)
	}

	return result, nil
}

// queryAll runs a filtered SELECT and scans every row. The filter map may be
// empty for an unfiltered listing.
func (r *evaluationResultRepository) queryAll(ctx context.Context, filter sq.Eq) ([]models.EvaluationResult, error) {
	log := logger.FromContext(ctx)

	qb := psql.Select(evaluationResultColumns).
		From("evaluation_results").
		OrderBy("id")
	if len(filter) > 0 {
		qb = qb.Where(filter)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*evaluationResultRepository.queryAll").Msg("evaluation results query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.EvaluationResult, 0)
	for rows.Next() {
		result, err := scanEvaluationResult(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

func (r *evaluationResultRepository) GetAll(ctx context.Context) ([]models.EvaluationResult, error) {
	return r.queryAll(ctx, sq.Eq{})
}

func (r *evaluationResultRepository) GetAllByEvaluationID(ctx context.Context, evaluationID int64) ([]models.EvaluationResult, error) {
	return r.queryAll(ctx, sq.Eq{"evaluation_id": evaluationID})
}

func (r *evaluationResultRepository) GetAllByEvaluationAndAdminID(ctx context.Context, evaluationID, adminID int64) ([]models.EvaluationResult, error) {
	return r.queryAll(ctx, sq.Eq{"evaluation_id": evaluationID, "admin_id": adminID})
}

func (r *evaluationResultRepository) GetAllByTeacherID(ctx context.Context, teacherID int64) ([]models.EvaluationResult, error) {
	return r.queryAll(ctx, sq.Eq{"teacher_id": teacherID})
}

func (r *evaluationResultRepository) Update(ctx context.Context, id int64, update models.EvaluationResultUpdate) (models.EvaluationResult, error) {
	log := logger.FromContext(ctx)

	qb := psql.Update("evaluation_results").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + evaluationResultColumns)

	if update.Title != nil {
		qb = qb.Set("title", *update.Title)
	}
	if update.TeacherID != nil {
		qb = qb.Set("teacher_id", *update.TeacherID)
	}
	if update.EvaluationID != nil {
		qb = qb.Set("evaluation_id", *update.EvaluationID)
	}
	if update.AdminID != nil {
		qb = qb.Set("admin_id", *update.AdminID)
	}
	if update.IsSubmitted != nil {
		qb = qb.Set("is_submitted", *update.IsSubmitted)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return models.EvaluationResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := scanEvaluationResult(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*evaluationResultRepository.Update").Int64("id", id).Msg("evaluation result update failed")
		return models.EvaluationResult{}, notFoundOr(err, ErrRecordNotFound)
	}

	return result, nil
}

func (r *evaluationResultRepository) Delete(ctx context.Context, id int64) (models.EvaluationResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("evaluation_results").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + evaluationResultColumns).
		ToSql()
	if err != nil {
		return models.EvaluationResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := scanEvaluationResult(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*evaluationResultRepository.Delete").Int64("id", id).Msg("evaluation result delete failed")
		return models.EvaluationResult{}, notFoundOr(err, ErrRecordNotFound)
	}

	return result, nil
}
