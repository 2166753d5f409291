package service

import (
	"context"

	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/internal/store"
	"github.com/evaldesk/evaldesk/models"
)

// questionResultService is the concrete implementation of
// QuestionResultService.
type questionResultService struct {
	questionResultRepository store.QuestionResultRepository
	logger                   *logger.Logger
}

// NewQuestionResultService constructs a QuestionResultService.
func NewQuestionResultService(questionResultRepository store.QuestionResultRepository, logger *logger.Logger) QuestionResultService {
	return &questionResultService{
		questionResultRepository: questionResultRepository,
		logger:                   logger,
	}
}

func (s *questionResultService) Create(ctx context.Context, in models.QuestionResultIn) (models.QuestionResult, error) {
	if in.QuestionText == "" {
		return models.QuestionResult{}, ErrInvalidDataProvided
	}

	return s.questionResultRepository.Create(ctx, in)
}

func (s *questionResultService) GetByID(ctx context.Context, id int64) (models.QuestionResult, error) {
	return s.questionResultRepository.GetByID(ctx, id)
}

func (s *questionResultService) GetAll(ctx context.Context, page, size int) (models.Page[models.QuestionResult], error) {
	questionResults, err := s.questionResultRepository.GetAll(ctx)
	if err != nil {
		return models.Page[models.QuestionResult]{}, err
	}

	return paginate(questionResults, page, size), nil
}

func (s *questionResultService) GetAllByEvaluationResultID(ctx context.Context, evaluationResultID int64, page, size int) (models.Page[models.QuestionResult], error) {
	questionResults, err := s.questionResultRepository.GetAllByEvaluationResultID(ctx, evaluationResultID)
	if err != nil {
		return models.Page[models.QuestionResult]{}, err
	}

	return paginate(questionResults, page, size), nil
}

func (s *questionResultService) Update(ctx context.Context, id int64, update models.QuestionResultUpdate) (models.QuestionResult, error) {
	return s.questionResultRepository.Update(ctx, id, update)
}

func (s *questionResultService) Delete(ctx context.Context, id int64) (models.QuestionResult, error) {
	return s.questionResultRepository.Delete(ctx, id)
}
