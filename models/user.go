package models

import "time"

// User represents the authenticated account as reported by the server
// after a verified magic-link login. The record is persisted locally so
// the session can be restored across restarts.
type User struct {
	// ID is the server-side unique identifier of the account.
	ID string `json:"id"`

	// Email is the address the magic link was sent to.
	Email string `json:"email"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
