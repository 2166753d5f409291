package models

import "time"

// EvaluationResult is a submitted copy of an evaluation: one row per
// teacher/evaluation/admin combination, with its answers stored as
// QuestionResult records.
type EvaluationResult struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	TeacherID    int64     `json:"teacher_id"`
	EvaluationID int64     `json:"evaluation_id"`
	AdminID      int64     `json:"admin_id"`
	IsSubmitted  bool      `json:"is_submitted"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the EvaluationResult model.
func (e EvaluationResult) TableName() string {
	return "evaluation_results"
}

// EvaluationResultIn is the create payload for an evaluation result.
type EvaluationResultIn struct {
	Title        string `json:"title"`
	TeacherID    int64  `json:"teacher_id"`
	EvaluationID int64  `json:"evaluation_id"`
	AdminID      int64  `json:"admin_id"`
	IsSubmitted  bool   `json:"is_submitted"`
}

// EvaluationResultUpdate carries partial-update fields; nil fields are
// untouched.
type EvaluationResultUpdate struct {
	Title        *string `json:"title,omitempty"`
	TeacherID    *int64  `json:"teacher_id,omitempty"`
	EvaluationID *int64  `json:"evaluation_id,omitempty"`
	AdminID      *int64  `json:"admin_id,omitempty"`
	IsSubmitted  *bool   `json:"is_submitted,omitempty"`
}

// EvaluationResultOut is an evaluation result enriched with display names of
// the evaluated teacher and the submitting user.
type EvaluationResultOut struct {
	EvaluationResult
	TeacherName string `json:"teacher_name,omitempty"`
	StudentName string `json:"student_name,omitempty"`
}

// CategoryAverage is one row of the per-category rating aggregation computed
// over the question results of a single evaluation result.
type CategoryAverage struct {
	Category      string  `json:"category"`
	AverageRating float64 `json:"average_rating"`
	Answers       int     `json:"answers"`
}
