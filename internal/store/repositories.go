package store

import (
	"github.com/evaldesk/evaldesk/internal/logger"
)

// Repositories aggregates every persistence interface the service layer
// consumes.
type Repositories struct {
	UserRepository             UserRepository
	EvaluationRepository       EvaluationRepository
	EvaluationResultRepository EvaluationResultRepository
	QuestionRepository         QuestionRepository
	QuestionResultRepository   QuestionResultRepository
	AnnouncementRepository     AnnouncementRepository
	ItemRepository             ItemRepository
}

// NewRepositories wires every repository to the shared database connection.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:             NewUserRepository(db, log),
		EvaluationRepository:       NewEvaluationRepository(db, log),
		EvaluationResultRepository: NewEvaluationResultRepository(db, log),
		QuestionRepository:         NewQuestionRepository(db, log),
		QuestionResultRepository:   NewQuestionResultRepository(db, log),
		AnnouncementRepository:     NewAnnouncementRepository(db, log),
		ItemRepository:             NewItemRepository(db, log),
	}
}
