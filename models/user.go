package models

import "time"

// User role values. Role is stored and checked as an opaque string; no
// role-based access rules live in the authentication core.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user, stable for the
	// account lifetime.
	ID int64 `json:"id"`

	// Username is the unique login identifier used during authentication.
	Username string `json:"username"`

	// Email is the account contact address. Password-reset tokens reference
	// the account through this field.
	Email string `json:"email"`

	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`

	// HashedPassword stores the bcrypt-encoded credential.
	// This value MUST be a derived hash, never plaintext, and is never
	// serialized to JSON.
	HashedPassword string `json:"-"`

	// Role is one of RoleAdmin, RoleTeacher, RoleStudent.
	Role string `json:"role"`

	// Disabled marks the account as excluded from active use. Enforcement
	// is a surrounding-layer concern, not part of the auth core.
	Disabled bool `json:"disabled"`

	// TempPwd marks an account whose password was set administratively and
	// should be changed on first login.
	TempPwd bool `json:"temp_pwd"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName returns the display name used in evaluation and announcement
// responses: "first middle last".
func (u User) FullName() string {
	return u.FirstName + " " + u.MiddleName + " " + u.LastName
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserIn is the payload accepted when creating a user. The plaintext
// password is hashed before persistence and never stored or logged.
type UserIn struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	Role       string `json:"role"`
	Disabled   bool   `json:"disabled"`
	TempPwd    bool   `json:"temp_pwd"`
	Password   string `json:"password"`
}

// UserUpdate carries the partial-update fields for a user record.
// Nil fields are left untouched.
type UserUpdate struct {
	Username   *string `json:"username,omitempty"`
	Email      *string `json:"email,omitempty"`
	FirstName  *string `json:"first_name,omitempty"`
	MiddleName *string `json:"middle_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Role       *string `json:"role,omitempty"`
	Disabled   *bool   `json:"disabled,omitempty"`
	TempPwd    *bool   `json:"temp_pwd,omitempty"`
}
