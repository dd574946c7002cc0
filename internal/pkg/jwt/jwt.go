package jwt

import (
	"errors"
	"time"

	"apartment-booking/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	serviceIssuer    = "apartment-booking"
	checkoutAudience = "checkout"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrEmptySecret  = errors.New("token secret is empty")
)

// Claims identify the booking session a checkout request belongs to.
type Claims struct {
	SessionID uuid.UUID `json:"session_id"`
	jwt.RegisteredClaims
}

// ServiceTokenSigner issues short-lived HS256 tokens the payment backend trusts.
type ServiceTokenSigner struct {
	secretKey     []byte
	tokenDuration time.Duration
	clock         clock.Clock
}

func NewServiceTokenSigner(secretKey string, tokenDuration time.Duration, clk clock.Clock) (*ServiceTokenSigner, error) {
	if secretKey == "" {
		return nil, ErrEmptySecret
	}
	return &ServiceTokenSigner{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		clock:         clk,
	}, nil
}

func (s *ServiceTokenSigner) Sign(sessionID uuid.UUID) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    serviceIssuer,
			Subject:   sessionID.String(),
			Audience:  jwt.ClaimStrings{checkoutAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Validate is what the payment backend runs on its side; kept here for tests and local stubs.
func (s *ServiceTokenSigner) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	},
		jwt.WithIssuer(serviceIssuer),
		jwt.WithAudience(checkoutAudience),
		jwt.WithTimeFunc(s.clock.Now),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
