package service

import (
	"context"
	"testing"

	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/internal/store"
	"github.com/evaldesk/evaldesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockEvaluationResultRepository struct {
	createFn                       func(ctx context.Context, in models.EvaluationResultIn) (models.EvaluationResult, error)
	getByIDFn                      func(ctx context.Context, id int64) (models.EvaluationResult, error)
	getAllFn                       func(ctx context.Context) ([]models.EvaluationResult, error)
	getAllByEvaluationIDFn         func(ctx context.Context, evaluationID int64) ([]models.EvaluationResult, error)
	getAllByEvaluationAndAdminIDFn func(ctx context.Context, evaluationID, adminID int64) ([]models.EvaluationResult, error)
	getAllByTeacherIDFn            func(ctx context.Context, teacherID int64) ([]models.EvaluationResult, error)
	updateFn                       func(ctx context.Context, id int64, update models.EvaluationResultUpdate) (models.EvaluationResult, error)
	deleteFn                       func(ctx context.Context, id int64) (models.EvaluationResult, error)
}

func (m *mockEvaluationResultRepository) Create(ctx context.Context, in models.EvaluationResultIn) (models.EvaluationResult, error) {
	return m.createFn(ctx, in)
}

func (m *mockEvaluationResultRepository) GetByID(ctx context.Context, id int64) (models.EvaluationResult, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockEvaluationResultRepository) GetAll(ctx context.Context) ([]models.EvaluationResult, error) {
	return m.getAllFn(ctx)
}

func (m *mockEvaluationResultRepository) GetAllByEvaluationID(ctx context.Context, evaluationID int64) ([]models.EvaluationResult, error) {
	return m.getAllByEvaluationIDFn(ctx, evaluationID)
}

func (m *mockEvaluationResultRepository) GetAllByEvaluationAndAdminID(ctx context.Context, evaluationID, adminID int64) ([]models.EvaluationResult, error) {
	return m.getAllByEvaluationAndAdminIDFn(ctx, evaluationID, adminID)
}

func (m *mockEvaluationResultRepository) GetAllByTeacherID(ctx context.Context, teacherID int64) ([]models.EvaluationResult, error) {
	return m.getAllByTeacherIDFn(ctx, teacherID)
}

func (m *mockEvaluationResultRepository) Update(ctx context.Context, id int64, update models.EvaluationResultUpdate) (models.EvaluationResult, error) {
	return m.updateFn(ctx, id, update)
}

func (m *mockEvaluationResultRepository) Delete(ctx context.Context, id int64) (models.EvaluationResult, error) {
	return m.deleteFn(ctx, id)
}

type mockQuestionResultRepository struct {
	createFn                     func(ctx context.Context, in models.QuestionResultIn) (models.QuestionResult, error)
	getByIDFn                    func(ctx context.Context, id int64) (models.QuestionResult, error)
	getAllFn                     func(ctx context.Context) ([]models.QuestionResult, error)
	getAllByEvaluationResultIDFn func(ctx context.Context, evaluationResultID int64) ([]models.QuestionResult, error)
	updateFn                     func(ctx context.Context, id int64, update models.QuestionResultUpdate) (models.QuestionResult, error)
	deleteFn                     func(ctx context.Context, id int64) (models.QuestionResult, error)
}

func (m *mockQuestionResultRepository) Create(ctx context.Context, in models.QuestionResultIn) (models.QuestionResult, error) {
	return m.createFn(ctx, in)
}

func (m *mockQuestionResultRepository) GetByID(ctx context.Context, id int64) (models.QuestionResult, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockQuestionResultRepository) GetAll(ctx context.Context) ([]models.QuestionResult, error) {
	return m.getAllFn(ctx)
}

func (m *mockQuestionResultRepository) GetAllByEvaluationResultID(ctx context.Context, evaluationResultID int64) ([]models.QuestionResult, error) {
	return m.getAllByEvaluationResultIDFn(ctx, evaluationResultID)
}

func (m *mockQuestionResultRepository) Update(ctx context.Context, id int64, update models.QuestionResultUpdate) (models.QuestionResult, error) {
	return m.updateFn(ctx, id, update)
}

func (m *mockQuestionResultRepository) Delete(ctx context.Context, id int64) (models.QuestionResult, error) {
	return m.deleteFn(ctx, id)
}

func TestGetCategoryAverages(t *testing.T) {
	results := &mockEvaluationResultRepository{
		getByIDFn: func(_ context.Context, id int64) (models.EvaluationResult, error) {
			return models.EvaluationResult{ID: id}, nil
		},
	}
	questionResults := &mockQuestionResultRepository{
		getAllByEvaluationResultIDFn: func(_ context.Context, _ int64) ([]models.QuestionResult, error) {
			return []models.QuestionResult{
				{Category: "clarity", Rating: 4},
				{Category: "clarity", Rating: 5},
				{Category: "pace", Rating: 2},
				{Category: "clarity", Rating: 3},
			}, nil
		},
	}

	svc := NewEvaluationResultService(results, questionResults, &mockUserRepository{}, logger.Nop())
	averages, err := svc.GetCategoryAverages(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, averages, 2)
	assert.Equal(t, "clarity", averages[0].Category)
	assert.InDelta(t, 4.0, averages[0].AverageRating, 1e-9)
	assert.Equal(t, 3, averages[0].Answers)
	assert.Equal(t, "pace", averages[1].Category)
	assert.InDelta(t, 2.0, averages[1].AverageRating, 1e-9)
	assert.Equal(t, 1, averages[1].Answers)
}

func TestGetCategoryAverages_UnknownResult(t *testing.T) {
	results := &mockEvaluationResultRepository{
		getByIDFn: func(_ context.Context, _ int64) (models.EvaluationResult, error) {
			return models.EvaluationResult{}, store.ErrRecordNotFound
		},
	}

	svc := NewEvaluationResultService(results, &mockQuestionResultRepository{}, &mockUserRepository{}, logger.Nop())
	_, err := svc.GetCategoryAverages(context.Background(), 42)

	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestGetCategoryAverages_NoAnswers(t *testing.T) {
	results := &mockEvaluationResultRepository{
		getByIDFn: func(_ context.Context, id int64) (models.EvaluationResult, error) {
			return models.EvaluationResult{ID: id}, nil
		},
	}
	questionResults := &mockQuestionResultRepository{
		getAllByEvaluationResultIDFn: func(_ context.Context, _ int64) ([]models.QuestionResult, error) {
			return nil, nil
		},
	}

	svc := NewEvaluationResultService(results, questionResults, &mockUserRepository{}, logger.Nop())
	averages, err := svc.GetCategoryAverages(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, averages)
}

func TestEvaluationResultGetAll_NameEnrichment(t *testing.T) {
	teacher := models.User{ID: 2, FirstName: "Jane", MiddleName: "Q", LastName: "Doe"}
	results := &mockEvaluationResultRepository{
		getAllFn: func(_ context.Context) ([]models.EvaluationResult, error) {
			return []models.EvaluationResult{
				{ID: 1, TeacherID: 2, AdminID: 99},
			}, nil
		},
	}
	users := &mockUserRepository{
		getUserByIDFn: func(_ context.Context, id int64) (models.User, error) {
			if id == teacher.ID {
				return teacher, nil
			}
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	svc := NewEvaluationResultService(results, &mockQuestionResultRepository{}, users, logger.Nop())
	page, err := svc.GetAll(context.Background(), 1, 10)

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Jane Q Doe", page.Items[0].TeacherName)
	// a deleted submitter leaves the name empty instead of failing the listing
	assert.Empty(t, page.Items[0].StudentName)
}
