package jwtmw

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"ccps_backend/internal/shared/apperr"
)

var (
	// ErrTokenExpired is returned for a correctly signed token past its expiry.
	ErrTokenExpired = apperr.New(apperr.Unauthenticated, "token expired")

	// ErrTokenMalformed covers every other verification failure, including a bad signature.
	ErrTokenMalformed = apperr.New(apperr.Unauthenticated, "invalid token")
)

// Verifier checks session tokens signed by a Generator with the same secret.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewVerifier creates a Verifier. Only HS256 tokens carrying an expiry are accepted.
func NewVerifier(secret, issuer string) *Verifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &Verifier{secret: []byte(secret), parser: jwt.NewParser(opts...)}
}

// Verify validates the signature first and the claims second, so a token
// signed with another key is malformed whatever its expiry says.
func (v *Verifier) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := v.parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}
	if !token.Valid || claims.ID == "" || claims.IssuedAt == nil {
		return nil, ErrTokenMalformed
	}
	if _, err := claims.UserID(); err != nil {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
