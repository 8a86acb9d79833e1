// Package authz holds the resolved request identity and the role and
// ownership checks applied to it.
package authz

import (
	"slices"
	"time"

	"github.com/gin-gonic/gin"

	"ccps_backend/internal/feature/auth/domain/entity"
	"ccps_backend/internal/platform/http/response"
	"ccps_backend/internal/shared/apperr"
)

const contextKeyIdentity = "authz.identity"

var (
	// ErrUnauthenticated is returned when no identity was resolved for the request.
	ErrUnauthenticated = apperr.New(apperr.Unauthenticated, "authentication required")

	// ErrForbidden is returned when the caller's role or ownership does not permit the operation.
	ErrForbidden = apperr.New(apperr.Forbidden, "access denied")
)

// Identity is the caller as resolved from a verified session token.
// Role always comes from the credential store, never from the token.
type Identity struct {
	UserID    uint
	Role      entity.Role
	TokenID   string
	ExpiresAt time.Time
	User      *entity.User
}

// Owned is implemented by every resource that belongs to a single user.
type Owned interface {
	OwnerID() uint
}

// SetIdentity attaches id to the request context.
func SetIdentity(c *gin.Context, id Identity) {
	c.Set(contextKeyIdentity, id)
}

// FromContext returns the identity attached by the auth middleware.
func FromContext(c *gin.Context) (Identity, error) {
	v, ok := c.Get(contextKeyIdentity)
	if !ok {
		return Identity{}, ErrUnauthenticated
	}
	id, ok := v.(Identity)
	if !ok || id.UserID == 0 {
		return Identity{}, ErrUnauthenticated
	}
	return id, nil
}

// HasRole reports whether the identity carries one of roles.
func (id Identity) HasRole(roles ...entity.Role) bool {
	return slices.Contains(roles, id.Role)
}

// RequireRole fails with ErrForbidden unless the identity has one of roles.
func RequireRole(id Identity, roles ...entity.Role) error {
	if id.HasRole(roles...) {
		return nil
	}
	return ErrForbidden
}

// RequireOwnerOrRole lets the owner of resource through, as well as any of roles.
func RequireOwnerOrRole(id Identity, resource Owned, roles ...entity.Role) error {
	if id.HasRole(roles...) {
		return nil
	}
	if resource != nil && resource.OwnerID() == id.UserID {
		return nil
	}
	return ErrForbidden
}

// RoleRequired is the route-level form of RequireRole.
// It must run after the auth middleware.
func RoleRequired(roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := FromContext(c)
		if err != nil {
			response.Error(c, err)
			return
		}
		if err := RequireRole(id, roles...); err != nil {
			response.Error(c, err)
			return
		}
		c.Next()
	}
}
