package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yoapunto/yoapunto-api/auth"
	"github.com/yoapunto/yoapunto-api/events"
	"github.com/yoapunto/yoapunto-api/models"
	"github.com/yoapunto/yoapunto-api/repositories"
)

type AccountService interface {
	Create(ctx context.Context, input CreateAccountInput) (*models.Account, error)
	GetByID(ctx context.Context, id int) (*models.Account, error)
	List(ctx context.Context, skip, limit int) ([]models.Account, error)
	ListByClub(ctx context.Context, clubID, skip, limit int) ([]models.Account, error)
	Update(ctx context.Context, id int, input UpdateAccountInput) (*models.Account, error)
	UpdatePassword(ctx context.Context, id int, input UpdatePasswordInput) (*models.Account, error)
	Deactivate(ctx context.Context, id int) (*models.Account, error)
}

type CreateAccountInput struct {
	EmailAddress string `json:"email_address"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Password     string `json:"password"`
	ClubID       int    `json:"club_id"`
}

// UpdateAccountInput carries true partial-update semantics: nil fields are
// left untouched. Password changes go through UpdatePassword only.
type UpdateAccountInput struct {
	EmailAddress *string `json:"email_address"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	ClubID       *int    `json:"club_id"`
}

type UpdatePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type accountService struct {
	accountRepo repositories.AccountRepository
	clubRepo    repositories.ClubRepository
	hub         *events.Hub
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	clubRepo repositories.ClubRepository,
	hub *events.Hub,
) AccountService {
	return &accountService{
		accountRepo: accountRepo,
		clubRepo:    clubRepo,
		hub:         hub,
	}
}

func (s *accountService) Create(ctx context.Context, input CreateAccountInput) (*models.Account, error) {
	email := strings.TrimSpace(input.EmailAddress)
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)

	fields := fieldErrors{}
	fields.check(isValidEmail(email), "email_address", "must be a valid email address")
	fields.check(lengthBetween(firstName, 1, 100), "first_name", "must be 1-100 characters")
	fields.check(lengthBetween(lastName, 1, 100), "last_name", "must be 1-100 characters")
	fields.check(lengthBetween(input.Password, 8, 128), "password", "must be 8-128 characters")
	if err := fields.toError(); err != nil {
		return nil, err
	}

	// The club must exist and still be active.
	if _, err := s.clubRepo.GetByID(ctx, input.ClubID); err != nil {
		if errors.Is(err, repositories.ErrClubNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to check club %d: %w", input.ClubID, err)
	}

	// Pre-check for a friendlier error; the unique index on
	// lower(email_address) is what actually guarantees uniqueness.
	if _, err := s.accountRepo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	digest, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		EmailAddress:   email,
		FirstName:      firstName,
		LastName:       lastName,
		PasswordDigest: digest,
		ClubID:         input.ClubID,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		switch {
		case errors.Is(err, repositories.ErrAccountEmailConflict):
			return nil, ErrEmailTaken
		case errors.Is(err, repositories.ErrAccountClubInvalid):
			return nil, ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.hub.Publish(events.TypeAccountCreated, account)
	return account, nil
}

func (s *accountService) GetByID(ctx context.Context, id int) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by id %d: %w", id, err)
	}
	return account, nil
}

func (s *accountService) List(ctx context.Context, skip, limit int) ([]models.Account, error) {
	accounts, err := s.accountRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) ListByClub(ctx context.Context, clubID, skip, limit int) ([]models.Account, error) {
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		if errors.Is(err, repositories.ErrClubNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to check club %d: %w", clubID, err)
	}

	accounts, err := s.accountRepo.ListByClub(ctx, clubID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for club %d: %w", clubID, err)
	}
	return accounts, nil
}

func (s *accountService) Update(ctx context.Context, id int, input UpdateAccountInput) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to load account %d for update: %w", id, err)
	}

	fields := fieldErrors{}
	if input.EmailAddress != nil {
		email := strings.TrimSpace(*input.EmailAddress)
		fields.check(isValidEmail(email), "email_address", "must be a valid email address")
		if err := fields.toError(); err != nil {
			return nil, err
		}
		if existing, err := s.accountRepo.GetByEmail(ctx, email); err == nil {
			if existing.ID != id {
				return nil, ErrEmailTaken
			}
		} else if !errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		account.EmailAddress = email
	}
	if input.FirstName != nil {
		firstName := strings.TrimSpace(*input.FirstName)
		fields.check(lengthBetween(firstName, 1, 100), "first_name", "must be 1-100 characters")
		account.FirstName = firstName
	}
	if input.LastName != nil {
		lastName := strings.TrimSpace(*input.LastName)
		fields.check(lengthBetween(lastName, 1, 100), "last_name", "must be 1-100 characters")
		account.LastName = lastName
	}
	if input.ClubID != nil {
		if _, err := s.clubRepo.GetByID(ctx, *input.ClubID); err != nil {
			if errors.Is(err, repositories.ErrClubNotFound) {
				return nil, ErrClubNotFound
			}
			return nil, fmt.Errorf("failed to check club %d: %w", *input.ClubID, err)
		}
		account.ClubID = *input.ClubID
	}
	if err := fields.toError(); err != nil {
		return nil, err
	}

	now := time.Now()
	account.UpdatedAt = &now

	if err := s.accountRepo.Update(ctx, account); err != nil {
		switch {
		case errors.Is(err, repositories.ErrAccountNotFound):
			return nil, ErrAccountNotFound
		case errors.Is(err, repositories.ErrAccountEmailConflict):
			return nil, ErrEmailTaken
		case errors.Is(err, repositories.ErrAccountClubInvalid):
			return nil, ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to update account %d: %w", id, err)
	}

	account.Club = nil // stale after a club_id change; GetByID re-joins
	s.hub.Publish(events.TypeAccountUpdated, account)
	return account, nil
}

// UpdatePassword verifies the current password before replacing the digest.
// A wrong current password reports the same not-found error as a missing
// account, so callers cannot probe which accounts exist.
func (s *accountService) UpdatePassword(ctx context.Context, id int, input UpdatePasswordInput) (*models.Account, error) {
	fields := fieldErrors{}
	fields.check(lengthBetween(input.NewPassword, 8, 128), "new_password", "must be 8-128 characters")
	if err := fields.toError(); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to load account %d for password change: %w", id, err)
	}

	if !auth.CheckPasswordHash(input.CurrentPassword, account.PasswordDigest) {
		return nil, ErrAccountNotFound
	}

	digest, err := auth.HashPassword(input.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash new password: %w", err)
	}

	now := time.Now()
	if err := s.accountRepo.UpdatePassword(ctx, id, digest, now); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to update password for account %d: %w", id, err)
	}

	account.PasswordDigest = digest
	account.UpdatedAt = &now
	return account, nil
}

func (s *accountService) Deactivate(ctx context.Context, id int) (*models.Account, error) {
	account, err := s.accountRepo.Deactivate(ctx, id, time.Now())
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			// Already inactive or missing; both read as not found.
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to deactivate account %d: %w", id, err)
	}

	s.hub.Publish(events.TypeAccountDeactivated, account)
	return account, nil
}
