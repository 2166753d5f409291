package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/models"
)

const questionResultColumns = "id, question_text, rating, comment, category, student_id, evaluation_result_id, student_name, evaluation_title, created_at, updated_at"

// questionResultRepository is the PostgreSQL-backed implementation of
// [QuestionResultRepository].
type questionResultRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewQuestionResultRepository constructs a [QuestionResultRepository] backed
// by the provided database connection and logger.
func NewQuestionResultRepository(db *DB, logger *logger.Logger) QuestionResultRepository {
	logger.Debug().Msg("creating question result repository")
	return &questionResultRepository{
		db:     db,
		logger: logger,
	}
}

func scanQuestionResult(row rowScanner) (models.QuestionResult, error) {
	var q models.QuestionResult
	err := row.Scan(
		&q.ID, &q.QuestionText, &q.Rating, &q.Comment, &q.Category,
		&q.StudentID, &q.EvaluationResultID, &q.StudentName, &q.EvaluationTitle,
		&q.CreatedAt, &q.UpdatedAt,
	)
	return q, err
}

func (r *questionResultRepository) Create(ctx context.Context, in models.QuestionResultIn) (models.QuestionResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("question_results").
		Columns("question_text", "rating", "comment", "category", "student_id", "evaluation_result_id", "student_name", "evaluation_title").
		Values(in.QuestionText, in.Rating, in.Comment, in.Category, in.StudentID, in.EvaluationResultID, in.StudentName, in.EvaluationTitle).
		Suffix("RETURNING " + questionResultColumns).
		ToSql()
	if err != nil {
		return models.QuestionResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := scanQuestionResult(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*questionResultRepository.Create").Msg("question result insert failed")
		return models.QuestionResult{}, classifyWriteError(err)
	}

	return result, nil
}

func (r *questionResultRepository) GetByID(ctx context.Context, id int64) (models.QuestionResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(questionResultColumns).
		From("question_results").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.QuestionResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := scanQuestionResult(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*questionResultRepository.GetByID").Int64("id", id).Msg("question result lookup failed")
		return models.QuestionResult{}, notFoundOr(err, ErrRecordNotFound)
	}

	return result, nil
}

func (r *questionResultRepository) queryAll(ctx context.Context, filter sq.Eq) ([]models.QuestionResult, error) {
	log := logger.FromContext(ctx)

	qb := psql.Select(questionResultColumns).
		From("question_results").
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
		log.Err(err).Str("func", "*questionResultRepository.queryAll").Msg("question results query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.QuestionResult, 0)
	for rows.Next() {
		result, err := scanQuestionResult(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

func (r *questionResultRepository) GetAll(ctx context.Context) ([]models.QuestionResult, error) {
	return r.queryAll(ctx, sq.Eq{})
}

func (r *questionResultRepository) GetAllByEvaluationResultID(ctx context.Context, evaluationResultID int64) ([]models.QuestionResult, error) {
	return r.queryAll(ctx, sq.Eq{"evaluation_result_id": evaluationResultID})
}

func (r *questionResultRepository) Update(ctx context.Context, id int64, update models.QuestionResultUpdate) (models.QuestionResult, error) {
	log := logger.FromContext(ctx)

	qb := psql.Update("question_results").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + questionResultColumns)

	if update.QuestionText != nil {
		qb = qb.Set("question_text", *update.QuestionText)
	}
	if update.Rating != nil {
		qb = qb.Set("rating", *update.Rating)
	}
	if update.Comment != nil {
		qb = qb.Set("comment", *update.Comment)
	}
	if update.Category != nil {
		qb = qb.Set("category", *update.Category)
	}
	if update.StudentID != nil {
		qb = qb.Set("student_id", *update.StudentID)
	}
	if update.EvaluationResultID != nil {
		qb = qb.Set("evaluation_result_id", *update.EvaluationResultID)
	}
	if update.StudentName != nil {
		qb = qb.Set("student_name", *update.StudentName)
	}
	if update.EvaluationTitle != nil {
		qb = qb.Set("evaluation_title", *update.EvaluationTitle)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return models.QuestionResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := scanQuestionResult(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*questionResultRepository.Update").Int64("id", id).Msg("question result update failed")
		return models.QuestionResult{}, notFoundOr(err, ErrRecordNotFound)
	}

	return result, nil
}

func (r *questionResultRepository) Delete(ctx context.Context, id int64) (models.QuestionResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("question_results").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + questionResultColumns).
		ToSql()
	if err != nil {
		return models.QuestionResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := scanQuestionResult(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*questionResultRepository.Delete").Int64("id", id).Msg("question result delete failed")
		return models.QuestionResult{}, notFoundOr(err, ErrRecordNotFound)
	}

	return result, nil
}
