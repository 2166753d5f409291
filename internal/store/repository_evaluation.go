package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/models"
)

const evaluationColumns = "id, title, teacher_id, admin_id, is_submitted, is_disabled, category, comment, created_at, updated_at"

// evaluationRepository is the PostgreSQL-backed implementation of
// [EvaluationRepository].
type evaluationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEvaluationRepository constructs an [EvaluationRepository] backed by the
// provided database connection and logger.
func NewEvaluationRepository(db *DB, logger *logger.Logger) EvaluationRepository {
	logger.Debug().Msg("creating evaluation repository")
	return &evaluationRepository{
		db:     db,
		logger: logger,
	}
}

func scanEvaluation(row rowScanner) (models.Evaluation, error) {
	var e models.Evaluation
	err := row.Scan(
		&e.ID, &e.Title, &e.TeacherID, &e.AdminID,
		&e.IsSubmitted, &e.IsDisabled, &e.Category, &e.Comment,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *evaluationRepository) Create(ctx context.Context, in models.EvaluationIn) (models.Evaluation, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("evaluations").
		Columns("title", "teacher_id", "admin_id", "is_submitted", "is_disabled", "category", "comment").
		Values(in.Title, in.TeacherID, in.AdminID, in.IsSubmitted, in.IsDisabled, in.Category, in.Comment).
		Suffix("RETURNING " + evaluationColumns).
		ToSql()
	if err != nil {
		return models.Evaluation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	evaluation, err := scanEvaluation(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*evaluationRepository.Create").Msg("evaluation insert failed")
		return models.Evaluation{}, classifyWriteError(err)
	}

	return evaluation, nil
}

func (r *evaluationRepository) GetByID(ctx context.Context, id int64) (models.Evaluation, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(evaluationColumns).
		From("evaluations").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Evaluation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	evaluation, err := scanEvaluation(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*evaluationRepository.GetByID").Int64("id", id).Msg("evaluation lookup failed")
		return models.Evaluation{}, notFoundOr(err, ErrRecordNotFound)
	}

	return evaluation, nil
}

func (r *evaluationRepository) GetAll(ctx context.Context) ([]models.Evaluation, error) {
	log := logger.FromContext(ctx)

	query, _, err := psql.Select(evaluationColumns).
		From("evaluations").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*evaluationRepository.GetAll").Msg("evaluations query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	evaluations := make([]models.Evaluation, 0)
	for rows.Next() {
		evaluation, err := scanEvaluation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		evaluations = append(evaluations, evaluation)
	}

	return evaluations, rows.Err()
}

func (r *evaluationRepository) Update(ctx context.Context, id int64, update models.EvaluationUpdate) (models.Evaluation, error) {
	log := logger.FromContext(ctx)

	qb := psql.Update("evaluations").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + evaluationColumns)

	if update.Title != nil {
		qb = qb.Set("title", *update.Title)
	}
	if update.TeacherID != nil {
		qb = qb.Set("teacher_id", *update.TeacherID)
	}
	if update.AdminID != nil {
		qb = qb.Set("admin_id", *update.AdminID)
	}
	if update.IsSubmitted != nil {
		qb = qb.Set("is_submitted", *update.IsSubmitted)
	}
	if update.IsDisabled != nil {
		qb = qb.Set("is_disabled", *update.IsDisabled)
	}
	if update.Category != nil {
		qb = qb.Set("category", *update.Category)
	}
	if update.Comment != nil {
		qb = qb.Set("comment", *update.Comment)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return models.Evaluation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	evaluation, err := scanEvaluation(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*evaluationRepository.Update").Int64("id", id).Msg("evaluation update failed")
		return models.Evaluation{}, notFoundOr(err, ErrRecordNotFound)
	}

	return evaluation, nil
}

func (r *evaluationRepository) Delete(ctx context.Context, id int64) (models.Evaluation, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("evaluations").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + evaluationColumns).
		ToSql()
	if err != nil {
		return models.Evaluation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	evaluation, err := scanEvaluation(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*evaluationRepository.Delete").Int64("id", id).Msg("evaluation delete failed")
		return models.Evaluation{}, notFoundOr(err, ErrRecordNotFound)
	}

	return evaluation, nil
}
