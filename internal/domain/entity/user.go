package entity

import "time"

// User is a site visitor account. Password holds the bcrypt hash.
type User struct {
	ID         string
	Email      string
	Password   string
	Name       string
	IsVerified bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// VerificationToken is the single-use opaque value mailed to a new user.
// It is deleted on successful verification; there is no expiry column, the
// deletion is what enforces single use.
type VerificationToken struct {
	Token     string
	UserID    string
	CreatedAt time.Time
}
