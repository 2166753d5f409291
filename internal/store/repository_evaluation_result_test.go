package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/models"
)

var evaluationResultTestColumns = []string{
	"id", "title", "teacher_id", "evaluation_id", "admin_id", "is_submitted", "created_at", "updated_at",
}

func newTestEvaluationResultRepo(t *testing.T) (*evaluationResultRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &evaluationResultRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func evaluationResultRow(id, teacherID, evaluationID int64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(evaluationResultTestColumns).
		AddRow(id, "Spring review", teacherID, evaluationID, int64(1), true, now, now)
}

func TestEvaluationResultCreate_Success(t *testing.T) {
	repo, mock, db := newTestEvaluationResultRepo(t)
	defer db.Close()

	in := models.EvaluationResultIn{
		Title:        "Spring review",
		TeacherID:    2,
		EvaluationID: 3,
		AdminID:      1,
		IsSubmitted:  true,
	}

	mock.ExpectQuery("INSERT INTO evaluation_results").
		WithArgs(in.Title, in.TeacherID, in.EvaluationID, in.AdminID, in.IsSubmitted).
		WillReturnRows(evaluationResultRow(10, in.TeacherID, in.EvaluationID))

	created, err := repo.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 10 {
		t.Errorf("expected ID=10, got %d", created.ID)
	}
	if !created.IsSubmitted {
		t.Error("expected IsSubmitted to be scanned")
	}
}

func TestEvaluationResultGetByID_NotFound(t *testing.T) {
	repo, mock, db := newTestEvaluationResultRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM evaluation_results").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 404)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestEvaluationResultGetAllByEvaluationID(t *testing.T) {
	repo, mock, db := newTestEvaluationResultRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM evaluation_results WHERE evaluation_id").
		WithArgs(int64(3)).
		WillReturnRows(evaluationResultRow(10, 2, 3))

	results, err := repo.GetAllByEvaluationID(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].EvaluationID != 3 {
		t.Errorf("expected EvaluationID=3, got %d", results[0].EvaluationID)
	}
}

func TestEvaluationResultGetAllByEvaluationAndAdminID(t *testing.T) {
	repo, mock, db := newTestEvaluationResultRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM evaluation_results WHERE").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(evaluationResultRow(10, 2, 3))

	results, err := repo.GetAllByEvaluationAndAdminID(context.Background(), 3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
}

func TestEvaluationResultGetAll_Empty(t *testing.T) {
	repo, mock, db := newTestEvaluationResultRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM evaluation_results ORDER BY id").
		WillReturnRows(sqlmock.NewRows(evaluationResultTestColumns))

	results, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty slice, got %d rows", len(results))
	}
	if results == nil {
		t.Error("expected non-nil empty slice")
	}
}
