package middleware

import (
	"github.com/gin-gonic/gin"

	apierrors "github.com/adaskevich/tasktracker/internal/errors"
	"github.com/adaskevich/tasktracker/internal/utils"
)

// RequireRoles rejects the request unless the authenticated user's role is
// in the allowed set. Role names are compared exactly: they come from the
// user's own record, which stores the canonical casing.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, role := range allowedRoles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		user, exists := GetCurrentUser(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if _, ok := allowed[user.RolePosition()]; !ok {
			apierrors.Forbidden(c, "Access to this route is only possible for roles: "+
				utils.QuoteJoin(allowedRoles))
			c.Abort()
			return
		}

		c.Next()
	}
}
