package models

import "time"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login name and the subject of issued tokens.
	Username string `json:"username"`

	// Email is the unique contact address of the user.
	Email string `json:"email"`

	// Password carries the plaintext password on the way in (register and
	// login bodies) and the argon2id PHC hash once loaded from the store.
	// It is never serialized back to clients.
	Password string `json:"password,omitempty"`

	// Enabled reports whether the account may authenticate. Disabled users
	// fail both login and bearer token authentication.
	Enabled bool `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity is the authenticated principal attached to a request context
// after a bearer token has been verified and its subject resolved to an
// enabled user.
type Identity struct {
	UserID   int64  `json:"-"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Enabled  bool   `json:"enabled"`
}

// NewIdentity builds an [Identity] from a stored user record.
func NewIdentity(user User) Identity {
	return Identity{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
		Enabled:  user.Enabled,
	}
}
