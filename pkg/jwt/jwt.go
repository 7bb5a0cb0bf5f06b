package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SubjectType distinguishes worker tokens from facility tokens
type SubjectType string

const (
	SubjectWorker   SubjectType = "worker"
	SubjectFacility SubjectType = "facility"
)

// Claims represents the JWT claims structure
type Claims struct {
	SubjectID   uuid.UUID   `json:"subject_id"`
	SubjectType SubjectType `json:"subject_type"`
	jwt.RegisteredClaims
}

// Service handles JWT operations
type Service struct {
	secret string
	expiry time.Duration
}

// NewService creates a new JWT service
func NewService(secret string, expiry time.Duration) *Service {
	return &Service{
		secret: secret,
		expiry: expiry,
	}
}

// GenerateToken generates a signed token for the given subject
func (s *Service) GenerateToken(subjectID uuid.UUID, subjectType SubjectType) (string, error) {
	now := time.Now()
	claims := Claims{
		SubjectID:   subjectID,
		SubjectType: subjectType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "yolku-staffing",
			Subject:   subjectID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates and parses a token, requiring the expected
// subject type.
func (s *Service) ValidateToken(tokenString string, expectedType SubjectType) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims.SubjectType != expectedType {
		return nil, fmt.Errorf("invalid token type: expected %s, got %s", expectedType, claims.SubjectType)
	}

	return claims, nil
}

// IsTokenExpired checks whether a token fails validation because it expired
func (s *Service) IsTokenExpired(tokenString string) bool {
	_, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.secret), nil
	})
	return errors.Is(err, jwt.ErrTokenExpired)
}
