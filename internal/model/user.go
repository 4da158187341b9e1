package model

import "time"

// Role is an authorization role carried in access tokens.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Gender of a user profile.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// User is an account. Password and verification hashes never leave the server.
type User struct {
	ID                    string     `json:"id"`
	Name                  string     `json:"name"`
	Email                 string     `json:"email"`
	PasswordHash          string     `json:"-"`
	Role                  Role       `json:"role"`
	Avatar                string     `json:"avatar,omitempty"`
	Age                   *int       `json:"age,omitempty"`
	PhoneNumber           string     `json:"phoneNumber,omitempty"`
	Address               string     `json:"address,omitempty"`
	Active                bool       `json:"active"`
	Gender                Gender     `json:"gender"`
	VerificationCodeHash  string     `json:"-"`
	VerificationExpiresAt *time.Time `json:"-"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

// HasVerificationCode reports whether a one-time code is pending.
func (u *User) HasVerificationCode() bool {
	return u.VerificationCodeHash != "" && u.VerificationExpiresAt != nil
}

// VerificationExpired reports whether the pending code is past its expiry at now.
func (u *User) VerificationExpired(now time.Time) bool {
	return u.VerificationExpiresAt == nil || !now.Before(*u.VerificationExpiresAt)
}
