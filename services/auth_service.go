package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yoapunto/yoapunto-api/auth"
	"github.com/yoapunto/yoapunto-api/models"
	"github.com/yoapunto/yoapunto-api/repositories"
)

type AuthService interface {
	// Login verifies credentials against active accounts only and stamps
	// last_login_at. Missing account, inactive account and wrong password
	// are indistinguishable to the caller.
	Login(ctx context.Context, input LoginInput) (*models.Account, string, error)
	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	// ResolveAccount loads the account behind a verified token.
	ResolveAccount(ctx context.Context, token string) (*models.Account, error)
}

type LoginInput struct {
	EmailAddress string `json:"email_address"`
	Password     string `json:"password"`
}

type authService struct {
	accountRepo repositories.AccountRepository
	tokens      *auth.TokenManager
}

func NewAuthService(accountRepo repositories.AccountRepository, tokens *auth.TokenManager) AuthService {
	return &authService{
		accountRepo: accountRepo,
		tokens:      tokens,
	}
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*models.Account, string, error) {
	account, err := s.accountRepo.GetByEmail(ctx, input.EmailAddress)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find account by email: %w", err)
	}

	// GetByEmail ignores the active flag (email uniqueness policy); login
	// must not.
	if !account.Active {
		return nil, "", ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(input.Password, account.PasswordDigest) {
		return nil, "", ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.accountRepo.UpdateLastLogin(ctx, account.ID, now); err != nil {
		return nil, "", fmt.Errorf("failed to stamp last login: %w", err)
	}
	account.LastLoginAt = &now

	token, err := s.tokens.IssueAccessToken(account.ID)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	accountID, tokenType, ok := s.tokens.VerifyToken(refreshToken)
	if !ok || tokenType != auth.TokenTypeRefresh {
		return "", ErrInvalidToken
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return "", ErrInvalidToken
		}
		return "", fmt.Errorf("failed to load account %d for refresh: %w", accountID, err)
	}

	return s.tokens.IssueAccessToken(account.ID)
}

func (s *authService) ResolveAccount(ctx context.Context, token string) (*models.Account, error) {
	accountID, tokenType, ok := s.tokens.VerifyToken(token)
	if !ok || tokenType != auth.TokenTypeAccess {
		return nil, ErrInvalidToken
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to load account %d from token: %w", accountID, err)
	}
	return account, nil
}
