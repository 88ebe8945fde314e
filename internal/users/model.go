package users

import "time"

// User is a credential-store identity record. PasswordHash is a bcrypt hash;
// plaintext passwords never leave the signup/login request scope.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
