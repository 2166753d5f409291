package models

import "time"

// Question is a single questionnaire entry belonging to an evaluation.
// StudentName and EvaluationTitle are denormalized display fields kept as
// the original records carried them.
type Question struct {
	ID              int64     `json:"id"`
	QuestionText    string    `json:"question_text"`
	Rating          int       `json:"rating"`
	Comment         string    `json:"comment"`
	Category        string    `json:"category"`
	StudentID       int64     `json:"student_id"`
	EvaluationID    int64     `json:"evaluation_id"`
	StudentName     string    `json:"student_name"`
	EvaluationTitle string    `json:"evaluation_title"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Question model.
func (q Question) TableName() string {
	return "questions"
}

// QuestionIn is the create payload for a question.
type QuestionIn struct {
	QuestionText    string `json:"question_text"`
	Rating          int    `json:"rating"`
	Comment         string `json:"comment"`
	Category        string `json:"category"`
	StudentID       int64  `json:"student_id"`
	EvaluationID    int64  `json:"evaluation_id"`
	StudentName     string `json:"student_name"`
	EvaluationTitle string `json:"evaluation_title"`
}

// QuestionUpdate carries partial-update fields; nil fields are untouched.
type QuestionUpdate struct {
	QuestionText    *string `json:"question_text,omitempty"`
	Rating          *int    `json:"rating,omitempty"`
	Comment         *string `json:"comment,omitempty"`
	Category        *string `json:"category,omitempty"`
	StudentID       *int64  `json:"student_id,omitempty"`
	EvaluationID    *int64  `json:"evaluation_id,omitempty"`
	StudentName     *string `json:"student_name,omitempty"`
	EvaluationTitle *string `json:"evaluation_title,omitempty"`
}
