package models

import "time"

// User represents an account entity used for authentication and recipe
// ownership. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique, normalized (trimmed, lower-cased) address the
	// user authenticates with.
	Email string `json:"email"`

	// Password carries the plaintext credential on inbound signup/login
	// requests only. It is never serialized back to clients.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored at the persistence layer.
	// Excluded from JSON entirely.
	PasswordHash string `json:"-"`

	// Image is the path of the user's avatar under the uploads prefix.
	Image string `json:"image"`

	// Recipes is the set of recipe identifiers this user owns. It mirrors
	// the creator reference stored on each recipe and is kept consistent
	// with it transactionally.
	Recipes []string `json:"recipes"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of the user safe for serialization: the plaintext
// password (if any) is dropped alongside the stored hash.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}
