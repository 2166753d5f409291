package service

import (
	"context"

	"github.com/evaldesk/evaldesk/models"
)

// AuthService is the authentication core: credential verification, token
// issuance and resolution, and the password-reset flow.
type AuthService interface {
	// Login verifies a username/password pair and, on success, returns the
	// account together with a freshly signed access token. An unknown
	// username and a wrong password both yield ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (models.User, models.Token, error)

	// ResolveToken turns a presented access token into the live account it
	// names. The account is re-fetched from storage on every call; any
	// failure, including a deleted subject account, yields
	// ErrUnauthenticated.
	ResolveToken(ctx context.Context, tokenString string) (models.User, error)

	// CreateResetToken issues a short-lived password-reset token for the
	// account registered under the given email.
	CreateResetToken(ctx context.Context, email string) (models.Token, error)

	// ResetPassword validates a reset token and replaces the credential of
	// the account it references with a hash of newPassword.
	ResetPassword(ctx context.Context, tokenString, newPassword string) error
}

// UserService manages account records. Create hashes the supplied plaintext
// password before it ever reaches storage.
type UserService interface {
	Create(ctx context.Context, in models.UserIn) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetAll(ctx context.Context, page, size int) (models.Page[models.User], error)
	Update(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	Delete(ctx context.Context, id int64) (models.User, error)
}

// EvaluationService manages questionnaires. List responses carry the
// evaluated teacher's display name.
type EvaluationService interface {
	Create(ctx context.Context, in models.EvaluationIn) (models.Evaluation, error)
	GetByID(ctx context.Context, id int64) (models.Evaluation, error)
	GetAll(ctx context.Context, page, size int) (models.Page[models.EvaluationOut], error)
	Update(ctx context.Context, id int64, update models.EvaluationUpdate) (models.Evaluation, error)
	Delete(ctx context.Context, id int64) (models.Evaluation, error)
}

// EvaluationResultService manages submitted evaluation copies, their
// filtered listings, and the per-category rating aggregation.
type EvaluationResultService interface {
	Create(ctx context.Context, in models.EvaluationResultIn) (models.EvaluationResult, error)
	GetByID(ctx context.Context, id int64) (models.EvaluationResult, error)
	GetAll(ctx context.Context, page, size int) (models.Page[models.EvaluationResultOut], error)
	GetAllByEvaluationID(ctx context.Context, evaluationID int64, page, size int) (models.Page[models.EvaluationResultOut], error)
	GetAllByEvaluationAndAdminID(ctx context.Context, evaluationID, adminID int64, page, size int) (models.Page[models.EvaluationResultOut], error)
	GetAllByTeacherID(ctx context.Context, teacherID int64, page, size int) (models.Page[models.EvaluationResultOut], error)
	// GetCategoryAverages aggregates the question results of one submitted
	// evaluation into an average rating per category.
	GetCategoryAverages(ctx context.Context, evaluationResultID int64) ([]models.CategoryAverage, error)
	Update(ctx context.Context, id int64, update models.EvaluationResultUpdate) (models.EvaluationResult, error)
	Delete(ctx context.Context, id int64) (models.EvaluationResult, error)
}

// QuestionService manages questionnaire entries.
type QuestionService interface {
	Create(ctx context.Context, in models.QuestionIn) (models.Question, error)
	GetByID(ctx context.Context, id int64) (models.Question, error)
	GetAll(ctx context.Context, page, size int) (models.Page[models.Question], error)
	GetAllByEvaluationID(ctx context.Context, evaluationID int64, page, size int) (models.Page[models.Question], error)
	Update(ctx context.Context, id int64, update models.QuestionUpdate) (models.Question, error)
	Delete(ctx context.Context, id int64) (models.Question, error)
}

// QuestionResultService manages answered questions.
type QuestionResultService interface {
	Create(ctx context.Context, in models.QuestionResultIn) (models.QuestionResult, error)
	GetByID(ctx context.Context, id int64) (models.QuestionResult, error)
	GetAll(ctx context.Context, page, size int) (models.Page[models.QuestionResult], error)
	GetAllByEvaluationResultID(ctx context.Context, evaluationResultID int64, page, size int) (models.Page[models.QuestionResult], error)
	Update(ctx context.Context, id int64, update models.QuestionResultUpdate) (models.QuestionResult, error)
	Delete(ctx context.Context, id int64) (models.QuestionResult, error)
}

// AnnouncementService manages admin announcements. List responses carry the
// author's display name and role.
type AnnouncementService interface {
	Create(ctx context.Context, in models.AnnouncementIn) (models.Announcement, error)
	GetByID(ctx context.Context, id int64) (models.Announcement, error)
	GetAll(ctx context.Context, page, size int) (models.Page[models.AnnouncementOut], error)
	Update(ctx context.Context, id int64, in models.AnnouncementIn) (models.Announcement, error)
	Delete(ctx context.Context, id int64) (models.Announcement, error)
}

// ItemService manages the demo item resource.
type ItemService interface {
	Create(ctx context.Context, in models.ItemIn) (models.Item, error)
	GetByID(ctx context.Context, id int64) (models.Item, error)
	GetAll(ctx context.Context, page, size int) (models.Page[models.Item], error)
	Update(ctx context.Context, id int64, in models.ItemIn) (models.Item, error)
	Delete(ctx context.Context, id int64) (models.Item, error)
}
