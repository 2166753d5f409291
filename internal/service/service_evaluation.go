package service

import (
	"context"

	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/internal/store"
	"github.com/evaldesk/evaldesk/models"
)

// evaluationService is the concrete implementation of EvaluationService.
type evaluationService struct {
	evaluationRepository store.EvaluationRepository
	userRepository       store.UserRepository
	logger               *logger.Logger
}

// NewEvaluationService constructs an EvaluationService. The user repository
// is consulted only to resolve teacher display names for listings.
func NewEvaluationService(evaluationRepository store.EvaluationRepository, userRepository store.UserRepository, logger *logger.Logger) EvaluationService {
	return &evaluationService{
		evaluationRepository: evaluationRepository,
		userRepository:       userRepository,
		logger:               logger,
	}
}

func (s *evaluationService) Create(ctx context.Context, in models.EvaluationIn) (models.Evaluation, error) {
	if in.Title == "" {
		return models.Evaluation{}, ErrInvalidDataProvided
	}

	return s.evaluationRepository.Create(ctx, in)
}

func (s *evaluationService) GetByID(ctx context.Context, id int64) (models.Evaluation, error) {
	return s.evaluationRepository.GetByID(ctx, id)
}

// GetAll lists evaluations enriched with each teacher's display name. A
// teacher account deleted after the evaluation was created leaves the name
// empty rather than failing the listing.
func (s *evaluationService) GetAll(ctx context.Context, page, size int) (models.Page[models.EvaluationOut], error) {
	evaluations, err := s.evaluationRepository.GetAll(ctx)
	if err != nil {
		return models.Page[models.EvaluationOut]{}, err
	}

	names := newNameResolver(s.userRepository)
	out := make([]models.EvaluationOut, 0, len(evaluations))
	for _, evaluation := range evaluations {
		out = append(out, models.EvaluationOut{
			Evaluation:  evaluation,
			TeacherName: names.fullName(ctx, evaluation.TeacherID),
		})
	}

	return paginate(out, page, size), nil
}

func (s *evaluationService) Update(ctx context.Context, id int64, update models.EvaluationUpdate) (models.Evaluation, error) {
	return s.evaluationRepository.Update(ctx, id, update)
}

func (s *evaluationService) Delete(ctx context.Context, id int64) (models.Evaluation, error) {
	return s.evaluationRepository.Delete(ctx, id)
}
