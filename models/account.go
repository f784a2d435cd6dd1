package models

import "time"

type Account struct {
	ID             int        `json:"id"`
	EmailAddress   string     `json:"email_address"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	PasswordDigest string     `json:"-"`
	ClubID         int        `json:"club_id"`
	Active         bool       `json:"active"`
	EmailVerified  bool       `json:"email_verified"`
	LastLoginAt    *time.Time `json:"last_login_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`

	// Club is populated only by lookups that join the owning club.
	Club *Club `json:"club,omitempty"`
}
