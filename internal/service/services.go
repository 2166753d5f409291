package service

import (
	"github.com/evaldesk/evaldesk/internal/config"
	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/internal/store"
)

// Services aggregates every use case exposed to the HTTP layer.
type Services struct {
	AuthService             AuthService
	UserService             UserService
	EvaluationService       EvaluationService
	EvaluationResultService EvaluationResultService
	QuestionService         QuestionService
	QuestionResultService   QuestionResultService
	AnnouncementService     AnnouncementService
	ItemService             ItemService
}

// NewServices wires every use case to its repositories and configuration.
func NewServices(repos *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:             NewAuthService(repos.UserRepository, cfg.App, logger),
		UserService:             NewUserService(repos.UserRepository, logger),
		EvaluationService:       NewEvaluationService(repos.EvaluationRepository, repos.UserRepository, logger),
		EvaluationResultService: NewEvaluationResultService(repos.EvaluationResultRepository, repos.QuestionResultRepository, repos.UserRepository, logger),
		QuestionService:         NewQuestionService(repos.QuestionRepository, logger),
		QuestionResultService:   NewQuestionResultService(repos.QuestionResultRepository, logger),
		AnnouncementService:     NewAnnouncementService(repos.AnnouncementRepository, repos.UserRepository, logger),
		ItemService:             NewItemService(repos.ItemRepository, logger),
	}
}
