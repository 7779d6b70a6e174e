package auth

import (
	"time"
)

const RoleAdmin = "admin"

type Account struct {
	ID                  int
	Username            string
	Email               string
	DisplayName         string
	PasswordHash        string
	Role                string
	IsActive            bool
	LastLogin           *time.Time
	ResetToken          *string
	ResetTokenExpiresAt *time.Time
	PasswordChangedAt   time.Time
	CreatedAt           time.Time
}

// Profile is the public view of an account, safe to send to clients.
type Profile struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

func (a *Account) Profile() *Profile {
	return &Profile{
		ID:          a.ID,
		Username:    a.Username,
		Email:       a.Email,
		DisplayName: a.DisplayName,
		Role:        a.Role,
	}
}

// PasswordVersion changes every time the password does. Tokens carry it, so a
// password reset invalidates all tokens issued before it.
func (a *Account) PasswordVersion() int64 {
	return a.PasswordChangedAt.UnixMicro()
}
