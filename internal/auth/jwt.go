package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// staffSubject is the fixed subject claim of staff tokens, which carry no
// team ID.
const staffSubject = "staff"

// TokenManager issues and validates the HS256 tokens handed to teams and
// staff at the start of an event.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenManager creates a new token manager.
// secret must be at least 32 characters for HS256 security.
func NewTokenManager(secret string, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// tokenClaims extends standard JWT claims with the caller's role.
type tokenClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// GenerateTeamToken creates a signed token with the team ID as subject and
// role "team".
func (m *TokenManager) GenerateTeamToken(teamID uuid.UUID) (string, error) {
	if teamID == uuid.Nil {
		return "", fmt.Errorf("team id is required")
	}
	return m.generate(teamID.String(), RoleTeam)
}

// GenerateStaffToken creates a signed token with role "staff".
func (m *TokenManager) GenerateStaffToken() (string, error) {
	return m.generate(staffSubject, RoleStaff)
}

func (m *TokenManager) generate(subject, role string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Validate parses and validates a token and returns the caller identity.
func (m *TokenManager) Validate(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return Identity{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	switch claims.Role {
	case RoleStaff:
		return Identity{Staff: true}, nil
	case RoleTeam:
		teamID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return Identity{}, fmt.Errorf("invalid subject UUID: %w", err)
		}
		return Identity{TeamID: teamID}, nil
	default:
		return Identity{}, fmt.Errorf("unknown role %q", claims.Role)
	}
}
