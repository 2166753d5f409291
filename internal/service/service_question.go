package service

import (
	"context"

	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/internal/store"
	"github.com/evaldesk/evaldesk/models"
)

// questionService is the concrete implementation of QuestionService.
type questionService struct {
	questionRepository store.QuestionRepository
	logger             *logger.Logger
}

// NewQuestionService constructs a QuestionService.
func NewQuestionService(questionRepository store.QuestionRepository, logger *logger.Logger) QuestionService {
	return &questionService{
		questionRepository: questionRepository,
		logger:             logger,
	}
}

func (s *questionService) Create(ctx context.Context, in models.QuestionIn) (models.Question, error) {
	if in.QuestionText == "" {
		return models.Question{}, ErrInvalidDataProvided
	}

	return s.questionRepository.Create(ctx, in)
}

func (s *questionService) GetByID(ctx context.Context, id int64) (models.Question, error) {
	return s.questionRepository.GetByID(ctx, id)
}

func (s *questionService) GetAll(ctx context.Context, page, size int) (models.Page[models.Question], error) {
	questions, err := s.questionRepository.GetAll(ctx)
	if err != nil {
		return models.Page[models.Question]{}, err
	}

	return paginate(questions, page, size), nil
}

func (s *questionService) GetAllByEvaluationID(ctx context.Context, evaluationID int64, page, size int) (models.Page[models.Question], error) {
	questions, err := s.questionRepository.GetAllByEvaluationID(ctx, evaluationID)
	if err != nil {
		return models.Page[models.Question]{}, err
	}

	return paginate(questions, page, size), nil
}

func (s *questionService) Update(ctx context.Context, id int64, update models.QuestionUpdate) (models.Question, error) {
	return s.questionRepository.Update(ctx, id, update)
}

func (s *questionService) Delete(ctx context.Context, id int64) (models.Question, error) {
	return s.questionRepository.Delete(ctx, id)
}
