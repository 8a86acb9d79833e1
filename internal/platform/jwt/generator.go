// Package jwtmw issues and verifies session tokens and resolves them into a
// request identity.
package jwtmw

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ccps_backend/internal/feature/auth/domain/entity"
)

// Claims is the payload of a session token.
// Subject carries the user id and ID carries the token id used for revocation.
type Claims struct {
	Role entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// UserID parses the subject back into a user id.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid subject %q", c.Subject)
	}
	return uint(id), nil
}

// Generator signs session tokens with HS256.
type Generator struct {
	secret     []byte
	issuer     string
	expiration time.Duration
	now        func() time.Time
}

// NewGenerator creates a Generator. Every token expires expiration after issuance.
func NewGenerator(secret, issuer string, expiration time.Duration) *Generator {
	return &Generator{
		secret:     []byte(secret),
		issuer:     issuer,
		expiration: expiration,
		now:        time.Now,
	}
}

// GenerateToken creates a signed token for the given user and role.
func (g *Generator) GenerateToken(userID uint, role entity.Role) (string, error) {
	now := g.now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        uuid.NewString(),
			Issuer:    g.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
