package entity

import "time"

// Admin is a back-office credential. Password holds the bcrypt hash, never
// the plaintext.
type Admin struct {
	ID        string
	Username  string
	Password  string
	CreatedAt time.Time
}
