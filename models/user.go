package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user,
	// assigned by the database on insert.
	ID int64 `json:"id"`

	// Username is the unique login identifier.
	// Lookups are exact and case-sensitive as stored.
	Username string `json:"username"`

	// Email is the user's contact address.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext, and is
	// never serialized to JSON.
	PasswordHash string `json:"-"`

	// Role is the authorization role of the account.
	// Restricted to the closed set defined by [Role].
	Role Role `json:"role"`

	// Avatar is an optional URL to the user's avatar image.
	Avatar *string `json:"avatar,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the transient username/password pair presented during
// login or registration. It exists only for the duration of the request
// and is never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserCreate carries the fields accepted when creating an account.
// Role is honoured only on the admin-gated management endpoint;
// self-registration always defaults it to [RoleUser].
type UserCreate struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     string  `json:"role"`
	Avatar   *string `json:"avatar,omitempty"`
}

// UserUpdate represents a partial update of a user record.
// Only non-nil fields are applied.
type UserUpdate struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}
