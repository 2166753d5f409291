package store

import (
	"context"

	"github.com/evaldesk/evaldesk/models"
)

// UserRepository is the persistence contract consumed by the authentication
// core and the user use case.
//
// Lookup methods return ErrNoUserWasFound (never a nil user) when no record
// matches, so callers can collapse "absent" and "wrong password" into one
// externally visible outcome without special-casing nils.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	// UpdatePassword replaces the stored credential hash. Besides initial
	// account creation this is the only write path for it.
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) error
	DeleteUser(ctx context.Context, id int64) (models.User, error)
}

// EvaluationRepository persists evaluation questionnaires.
type EvaluationRepository interface {
	Create(ctx context.Context, in models.EvaluationIn) (models.Evaluation, error)
	GetByID(ctx context.Context, id int64) (models.Evaluation, error)
	GetAll(ctx context.Context) ([]models.Evaluation, error)
	Update(ctx context.Context, id int64, update models.EvaluationUpdate) (models.Evaluation, error)
	Delete(ctx context.Context, id int64) (models.Evaluation, error)
}

// EvaluationResultRepository persists submitted evaluation copies.
type EvaluationResultRepository interface {
	Create(ctx context.Context, in models.EvaluationResultIn) (models.EvaluationResult, error)
	GetByID(ctx context.Context, id int64) (models.EvaluationResult, error)
	GetAll(ctx context.Context) ([]models.EvaluationResult, error)
	GetAllByEvaluationID(ctx context.Context, evaluationID int64) ([]models.EvaluationResult, error)
	GetAllByEvaluationAndAdminID(ctx context.Context, evaluationID, adminID int64) ([]models.EvaluationResult, error)
	GetAllByTeacherID(ctx context.Context, teacherID int64) ([]models.EvaluationResult, error)
	Update(ctx context.Context, id int64, update models.EvaluationResultUpdate) (models.EvaluationResult, error)
	Delete(ctx context.Context, id int64) (models.EvaluationResult, error)
}

// QuestionRepository persists questionnaire entries.
type QuestionRepository interface {
	Create(ctx context.Context, in models.QuestionIn) (models.Question, error)
	GetByID(ctx context.Context, id int64) (models.Question, error)
	GetAll(ctx context.Context) ([]models.Question, error)
	GetAllByEvaluationID(ctx context.Context, evaluationID int64) ([]models.Question, error)
	Update(ctx context.Context, id int64, update models.QuestionUpdate) (models.Question, error)
	Delete(ctx context.Context, id int64) (models.Question, error)
}

// QuestionResultRepository persists answered questions.
type QuestionResultRepository interface {
	Create(ctx context.Context, in models.QuestionResultIn) (models.QuestionResult, error)
	GetByID(ctx context.Context, id int64) (models.QuestionResult, error)
	GetAll(ctx context.Context) ([]models.QuestionResult, error)
	GetAllByEvaluationResultID(ctx context.Context, evaluationResultID int64) ([]models.QuestionResult, error)
	Update(ctx context.Context, id int64, update models.QuestionResultUpdate) (models.QuestionResult, error)
	Delete(ctx context.Context, id int64) (models.QuestionResult, error)
}

// AnnouncementRepository persists admin announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, in models.AnnouncementIn) (models.Announcement, error)
	GetByID(ctx context.Context, id int64) (models.Announcement, error)
	GetAll(ctx context.Context) ([]models.Announcement, error)
	Update(ctx context.Context, id int64, in models.AnnouncementIn) (models.Announcement, error)
	Delete(ctx context.Context, id int64) (models.Announcement, error)
}

// ItemRepository persists the demo item resource.
type ItemRepository interface {
	Create(ctx context.Context, in models.ItemIn) (models.Item, error)
	GetByID(ctx context.Context, id int64) (models.Item, error)
	GetAll(ctx context.Context) ([]models.Item, error)
	Update(ctx context.Context, id int64, in models.ItemIn) (models.Item, error)
	Delete(ctx context.Context, id int64) (models.Item, error)
}
