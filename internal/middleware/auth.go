package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/adaskevich/tasktracker/internal/constants"
	"github.com/adaskevich/tasktracker/internal/database"
	apierrors "github.com/adaskevich/tasktracker/internal/errors"
	"github.com/adaskevich/tasktracker/internal/models"
	"github.com/adaskevich/tasktracker/internal/services"
)

// RequireAuth validates the bearer token and loads the authenticated user,
// with role attached, into the request context.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	secret := []byte(jwtSecret)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Unauthorized(c, "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			apierrors.Unauthorized(c, "Invalid authorization header")
			c.Abort()
			return
		}

		claims := &services.AccessClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			apierrors.Unauthorized(c, "Invalid token error")
			c.Abort()
			return
		}

		var user models.User
		if err := database.GetDB().Preload("Role").
			Where("login = ?", claims.Subject).First(&user).Error; err != nil {
			apierrors.Unauthorized(c, "Invalid token error")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyCurrentUser, &user)
		c.Next()
	}
}

// GetCurrentUser retrieves the authenticated user from context.
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyCurrentUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
