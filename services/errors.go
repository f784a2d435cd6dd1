package services

import "errors"

// Sentinels shared across services and the HTTP error mapping.
var (
	ErrClubNotFound    = errors.New("club not found")
	ErrGameNotFound    = errors.New("game not found")
	ErrAccountNotFound = errors.New("account not found")

	ErrEmailTaken        = errors.New("email address already registered")
	ErrAlreadyAssociated = errors.New("game already associated with this club")
	ErrNotAssociated     = errors.New("game not associated with this club")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAccountInactive    = errors.New("inactive account")
)
