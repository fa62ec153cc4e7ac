package user

import "time"

// User is a registered account. Usernames are unique with a case-sensitive
// exact match. Users are never updated or deleted after registration.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
