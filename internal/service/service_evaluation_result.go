package service

import (
	"context"
	"sort"

	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/internal/store"
	"github.com/evaldesk/evaldesk/models"
)

// evaluationResultService is the concrete implementation of
// EvaluationResultService.
type evaluationResultService struct {
	evaluationResultRepository store.EvaluationResultRepository
	questionResultRepository   store.QuestionResultRepository
	userRepository             store.UserRepository
	logger                     *logger.Logger
}

// NewEvaluationResultService constructs an EvaluationResultService. The
// question result repository feeds the category aggregation; the user
// repository resolves display names for listings.
func NewEvaluationResultService(
	evaluationResultRepository store.EvaluationResultRepository,
	questionResultRepository store.QuestionResultRepository,
	userRepository store.UserRepository,
	logger *logger.Logger,
) EvaluationResultService {
	return &evaluationResultService{
		evaluationResultRepository: evaluationResultRepository,
		questionResultRepository:   questionResultRepository,
		userRepository:             userRepository,
		logger:                     logger,
	}
}

func (s *evaluationResultService) Create(ctx context.Context, in models.EvaluationResultIn) (models.EvaluationResult, error) {
	if in.Title == "" {
		return models.EvaluationResult{}, ErrInvalidDataProvided
	}

	return s.evaluationResultRepository.Create(ctx, in)
}

func (s *evaluationResultService) GetByID(ctx context.Context, id int64) (models.EvaluationResult, error) {
	return s.evaluationResultRepository.GetByID(ctx, id)
}

func (s *evaluationResultService) GetAll(ctx context.Context, page, size int) (models.Page[models.EvaluationResultOut], error) {
	results, err := s.evaluationResultRepository.GetAll(ctx)
	if err != nil {
		return models.Page[models.EvaluationResultOut]{}, err
	}

	return paginate(s.enrich(ctx, results), page, size), nil
}

func (s *evaluationResultService) GetAllByEvaluationID(ctx context.Context, evaluationID int64, page, size int) (models.Page[models.EvaluationResultOut], error) {
	results, err := s.evaluationResultRepository.GetAllByEvaluationID(ctx, evaluationID)
	if err != nil {
		return models.Page[models.EvaluationResultOut]{}, err
	}

	return paginate(s.enrich(ctx, results), page, size), nil
}

func (s *evaluationResultService) GetAllByEvaluationAndAdminID(ctx context.Context, evaluationID, adminID int64, page, size int) (models.Page[models.EvaluationResultOut], error) {
	results, err := s.evaluationResultRepository.GetAllByEvaluationAndAdminID(ctx, evaluationID, adminID)
	if err != nil {
		return models.Page[models.EvaluationResultOut]{}, err
	}

	return paginate(s.enrich(ctx, results), page, size), nil
}

func (s *evaluationResultService) GetAllByTeacherID(ctx context.Context, teacherID int64, page, size int) (models.Page[models.EvaluationResultOut], error) {
	results, err := s.evaluationResultRepository.GetAllByTeacherID(ctx, teacherID)
	if err != nil {
		return models.Page[models.EvaluationResultOut]{}, err
	}

	return paginate(s.enrich(ctx, results), page, size), nil
}

// GetCategoryAverages folds the question results of one submitted evaluation
// into an average rating per category, ordered by category name.
func (s *evaluationResultService) GetCategoryAverages(ctx context.Context, evaluationResultID int64) ([]models.CategoryAverage, error) {
	if _, err := s.evaluationResultRepository.GetByID(ctx, evaluationResultID); err != nil {
		return nil, err
	}

	questionResults, err := s.questionResultRepository.GetAllByEvaluationResultID(ctx, evaluationResultID)
	if err != nil {
		return nil, err
	}

	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, qr := range questionResults {
		sums[qr.Category] += qr.Rating
		counts[qr.Category]++
	}

	averages := make([]models.CategoryAverage, 0, len(counts))
	for category, count := range counts {
		averages = append(averages, models.CategoryAverage{
			Category:      category,
			AverageRating: float64(sums[category]) / float64(count),
			Answers:       count,
		})
	}
	sort.Slice(averages, func(i, j int) bool {
		return averages[i].Category < averages[j].Category
	})

	return averages, nil
}

func (s *evaluationResultService) Update(ctx context.Context, id int64, update models.EvaluationResultUpdate) (models.EvaluationResult, error) {
	return s.evaluationResultRepository.Update(ctx, id, update)
}

func (s *evaluationResultService) Delete(ctx context.Context, id int64) (models.EvaluationResult, error) {
	return s.evaluationResultRepository.Delete(ctx, id)
}

// enrich attaches teacher and submitter display names to each result.
func (s *evaluationResultService) enrich(ctx context.Context, results []models.EvaluationResult) []models.EvaluationResultOut {
	names := newNameResolver(s.userRepository)
	out := make([]models.EvaluationResultOut, 0, len(results))
	for _, result := range results {
		out = append(out, models.EvaluationResultOut{
			EvaluationResult: result,
			TeacherName:      names.fullName(ctx, result.TeacherID),
			StudentName:      names.fullName(ctx, result.AdminID),
		})
	}
	return out
}
