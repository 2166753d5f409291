package models

import "time"

// Evaluation is a questionnaire assigned to a teacher. Questions belong to
// an evaluation; submitted copies are stored as EvaluationResult records.
type Evaluation struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	TeacherID   int64     `json:"teacher_id"`
	AdminID     int64     `json:"admin_id"`
	IsSubmitted bool      `json:"is_submitted"`
	IsDisabled  bool      `json:"is_disabled"`
	Category    string    `json:"category"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Evaluation model.
func (e Evaluation) TableName() string {
	return "evaluations"
}

// EvaluationIn is the create payload for an evaluation.
type EvaluationIn struct {
	Title       string `json:"title"`
	TeacherID   int64  `json:"teacher_id"`
	AdminID     int64  `json:"admin_id"`
	IsSubmitted bool   `json:"is_submitted"`
	IsDisabled  bool   `json:"is_disabled"`
	Category    string `json:"category"`
	Comment     string `json:"comment"`
}

// EvaluationUpdate carries partial-update fields; nil fields are untouched.
type EvaluationUpdate struct {
	Title       *string `json:"title,omitempty"`
	TeacherID   *int64  `json:"teacher_id,omitempty"`
	AdminID     *int64  `json:"admin_id,omitempty"`
	IsSubmitted *bool   `json:"is_submitted,omitempty"`
	IsDisabled  *bool   `json:"is_disabled,omitempty"`
	Category    *string `json:"category,omitempty"`
	Comment     *string `json:"comment,omitempty"`
}

// EvaluationOut is an evaluation enriched with the teacher's display name
// for list views.
type EvaluationOut struct {
	Evaluation
	TeacherName string `json:"teacher_name,omitempty"`
}
