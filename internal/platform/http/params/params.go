// Package params reads typed values out of the request path and query.
package params

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"ccps_backend/internal/shared/apperr"
)

// ID parses the named path parameter as a positive id.
func ID(c *gin.Context, name string) (uint, error) {
	return parseID(name, c.Param(name))
}

// QueryID parses the named query parameter as a positive id. A missing
// parameter is a validation error.
func QueryID(c *gin.Context, name string) (uint, error) {
	return parseID(name, c.Query(name))
}

func parseID(name, raw string) (uint, error) {
	if raw == "" {
		return 0, apperr.New(apperr.Validation, fmt.Sprintf("%s is required", name))
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, apperr.New(apperr.Validation, fmt.Sprintf("invalid %s %q", name, raw))
	}
	return uint(n), nil
}
