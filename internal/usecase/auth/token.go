package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/gdugdh24/reunion-backend/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService verifies HS256 access tokens issued by the auth provider. The
// subject claim carries the user's UUID.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// IssueToken signs a token for userID. Production tokens come from the auth
// provider; this is used by local tooling and tests.
func (s *TokenService) IssueToken(userID uuid.UUID, ttl time.Duration) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// VerifyToken verifies JWT token and returns user ID
func (s *TokenService) VerifyToken(ctx context.Context, tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return uuid.Nil, domain.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, domain.ErrInvalidToken
	}
	return userID, nil
}
