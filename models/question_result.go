package models

import "time"

// QuestionResult is a single answered question belonging to an evaluation
// result. Rating drives the per-category average aggregation.
type QuestionResult struct {
	ID                 int64     `json:"id"`
	QuestionText       string    `json:"question_text"`
	Rating             int       `json:"rating"`
	Comment            string    `json:"comment"`
	Category           string    `json:"category"`
	StudentID          int64     `json:"student_id"`
	EvaluationResultID int64     `json:"evaluation_result_id"`
	StudentName        string    `json:"student_name"`
	EvaluationTitle    string    `json:"evaluation_title"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the QuestionResult model.
func (q QuestionResult) TableName() string {
	return "question_results"
}

// QuestionResultIn is the create payload for a question result.
type QuestionResultIn struct {
	QuestionText       string `json:"question_text"`
	Rating             int    `json:"rating"`
	Comment            string `json:"comment"`
	Category           string `json:"category"`
	StudentID          int64  `json:"student_id"`
	EvaluationResultID int64  `json:"evaluation_result_id"`
	StudentName        string `json:"student_name"`
	EvaluationTitle    string `json:"evaluation_title"`
}

// QuestionResultUpdate carries partial-update fields; nil fields are
// untouched.
type QuestionResultUpdate struct {
	QuestionText       *string `json:"question_text,omitempty"`
	Rating             *int    `json:"rating,omitempty"`
	Comment            *string `json:"comment,omitempty"`
	Category           *string `json:"category,omitempty"`
	StudentID          *int64  `json:"student_id,omitempty"`
	EvaluationResultID *int64  `json:"evaluation_result_id,omitempty"`
	StudentName        *string `json:"student_name,omitempty"`
	EvaluationTitle    *string `json:"evaluation_title,omitempty"`
}
