package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/models"
)

const questionColumns = "id, question_text, rating, comment, category, student_id, evaluation_id, student_name, evaluation_title, created_at, updated_at"

// questionRepository is the PostgreSQL-backed implementation of
// [QuestionRepository].
type questionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewQuestionRepository constructs a [QuestionRepository] backed by the
// provided database connection and logger.
func NewQuestionRepository(db *DB, logger *logger.Logger) QuestionRepository {
	logger.Debug().Msg("creating question repository")
	return &questionRepository{
		db:     db,
		logger: logger,
	}
}

func scanQuestion(row rowScanner) (models.Question, error) {
	var q models.Question
	err := row.Scan(
		&q.ID, &q.QuestionText, &q.Rating, &q.Comment, &q.Category,
		&q.StudentID, &q.EvaluationID, &q.StudentName, &q.EvaluationTitle,
		&q.CreatedAt, &q.UpdatedAt,
	)
	return q, err
}

func (r *questionRepository) Create(ctx context.Context, in models.QuestionIn) (models.Question, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("questions").
		Columns("question_text", "rating", "comment", "category", "student_id", "evaluation_id", "student_name", "evaluation_title").
		Values(in.QuestionText, in.Rating, in.Comment, in.Category, in.StudentID, in.EvaluationID, in.StudentName, in.EvaluationTitle).
		Suffix("RETURNING " + questionColumns).
		ToSql()
	if err != nil {
		return models.Question{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	question, err := scanQuestion(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.Create").Msg("question insert failed")
		return models.Question{}, classifyWriteError(err)
	}

	return question, nil
}

func (r *questionRepository) GetByID(ctx context.Context, id int64) (models.Question, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(questionColumns).
		From("questions").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Question{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	question, err := scanQuestion(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.GetByID").Int64("id", id).Msg("question lookup failed")
		return models.Question{}, notFoundOr(err, ErrRecordNotFound)
	}

	return question, nil
}

func (r *questionRepository) queryAll(ctx context.Context, filter sq.Eq) ([]models.Question, error) {
	log := logger.FromContext(ctx)

	qb := psql.Select(questionColumns).
		From("questions").
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
		log.Err(err).Str("func", "*questionRepository.queryAll").Msg("questions query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	questions := make([]models.Question, 0)
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		questions = append(questions, question)
	}

	return questions, rows.Err()
}

func (r *questionRepository) GetAll(ctx context.Context) ([]models.Question, error) {
	return r.queryAll(ctx, sq.Eq{})
}

func (r *questionRepository) GetAllByEvaluationID(ctx context.Context, evaluationID int64) ([]models.Question, error) {
	return r.queryAll(ctx, sq.Eq{"evaluation_id": evaluationID})
}

func (r *questionRepository) Update(ctx context.Context, id int64, update models.QuestionUpdate) (models.Question, error) {
	log := logger.FromContext(ctx)

	qb := psql.Update("questions").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + questionColumns)

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
	if update.EvaluationID != nil {
		qb = qb.Set("evaluation_id", *update.EvaluationID)
	}
	if update.StudentName != nil {
		qb = qb.Set("student_name", *update.StudentName)
	}
	if update.EvaluationTitle != nil {
		qb = qb.Set("evaluation_title", *update.EvaluationTitle)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return models.Question{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	question, err := scanQuestion(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.Update").Int64("id", id).Msg("question update failed")
		return models.Question{}, notFoundOr(err, ErrRecordNotFound)
	}

	return question, nil
}

func (r *questionRepository) Delete(ctx context.Context, id int64) (models.Question, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("questions").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + questionColumns).
		ToSql()
	if err != nil {
		return models.Question{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	question, err := scanQuestion(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.Delete").Int64("id", id).Msg("question delete failed")
		return models.Question{}, notFoundOr(err, ErrRecordNotFound)
	}

	return question, nil
}
