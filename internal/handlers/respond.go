package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apierrors "github.com/adaskevich/tasktracker/internal/errors"
	"github.com/adaskevich/tasktracker/internal/services"
	"github.com/adaskevich/tasktracker/pkg/logger"
)

// respondServiceError translates service-layer errors into HTTP responses.
// Unexpected faults are logged with context and surfaced as a generic 500.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var forbiddenErr *services.ForbiddenError

	switch {
	case errors.As(err, &validationErr):
		apierrors.BadRequest(c, validationErr.Message)
	case errors.As(err, &notFoundErr):
		apierrors.NotFound(c, notFoundErr.Message)
	case errors.As(err, &forbiddenErr):
		apierrors.Forbidden(c, forbiddenErr.Message)
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrDuplicateUser):
		apierrors.Conflict(c, err.Error())
	default:
		logger.Get().Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("unexpected internal error")
		apierrors.InternalError(c, "")
	}
}
