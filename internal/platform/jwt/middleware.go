package jwtmw

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"ccps_backend/internal/feature/auth/domain/entity"
	"ccps_backend/internal/platform/authz"
	"ccps_backend/internal/platform/http/response"
	"ccps_backend/internal/shared/apperr"
)

// TokenVerifier turns a bearer token into verified claims.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

// UserLookup re-reads the token subject from the credential store.
// A missing user must be reported as an apperr.NotFound error.
type UserLookup interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// RevocationChecker reports whether a token id was logged out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

var (
	errMissingBearer = apperr.New(apperr.Unauthenticated, "missing bearer token")
	errTokenRevoked  = apperr.New(apperr.Unauthenticated, "token revoked")
	errUnknownUser   = apperr.New(apperr.Unauthenticated, "user no longer exists")
	errStaleToken    = apperr.New(apperr.Unauthenticated, "token issued before password change")
)

// AuthRequired returns a middleware that resolves the bearer token into an
// authz.Identity or aborts with 401. Store failures abort with 500.
func AuthRequired(verifier TokenVerifier, users UserLookup, revoked RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			response.Error(c, errMissingBearer)
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

		claims, err := verifier.Verify(tokenStr)
		if err != nil {
			slog.Warn("token rejected", "error", err, "remote_addr", c.ClientIP())
			response.Error(c, err)
			return
		}

		ctx := c.Request.Context()
		isRevoked, err := revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			response.Error(c, err)
			return
		}
		if isRevoked {
			response.Error(c, errTokenRevoked)
			return
		}

		userID, _ := claims.UserID()
		user, err := users.FindByID(ctx, userID)
		if err != nil {
			if apperr.Is(err, apperr.NotFound) {
				response.Error(c, errUnknownUser)
				return
			}
			response.Error(c, err)
			return
		}
		if user.TokensIssuedBeforeInvalid(claims.IssuedAt.Time) {
			response.Error(c, errStaleToken)
			return
		}

		authz.SetIdentity(c, authz.Identity{
			UserID:    user.ID,
			Role:      user.Role,
			TokenID:   claims.ID,
			ExpiresAt: claims.ExpiresAt.Time,
			User:      user,
		})
		c.Next()
	}
}
