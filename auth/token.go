package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenManager issues and verifies HS256 tokens. The secret and TTLs are
// loaded once at startup and injected; nothing here is mutated at runtime.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (m *TokenManager) AccessTTL() time.Duration {
	return m.accessTTL
}

func (m *TokenManager) IssueAccessToken(accountID int) (string, error) {
	return m.issue(accountID, TokenTypeAccess, m.accessTTL)
}

// IssueRefreshToken returns the long-lived variant used by /auth/refresh.
func (m *TokenManager) IssueRefreshToken(accountID int) (string, error) {
	return m.issue(accountID, TokenTypeRefresh, m.refreshTTL)
}

func (m *TokenManager) issue(accountID int, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.Itoa(accountID),
		"typ": tokenType,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks signature and expiry. Expired, malformed and
// wrongly-signed tokens are all reported the same way: ok == false.
func (m *TokenManager) VerifyToken(tokenString string) (accountID int, tokenType string, ok bool) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, valid := t.Method.(*jwt.SigningMethodHMAC); !valid {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", false
	}

	claims, valid := token.Claims.(jwt.MapClaims)
	if !valid {
		return 0, "", false
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, "", false
	}
	accountID, err = strconv.Atoi(sub)
	if err != nil || accountID <= 0 {
		return 0, "", false
	}

	tokenType, _ = claims["typ"].(string)
	return accountID, tokenType, true
}
