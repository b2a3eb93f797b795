package httpHandler

import (
	"errors"
	"net/http"

	"health-server/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps a domain error to a status and a message safe to show the
// client. Not-found and forbidden share one answer so existence is not leaked.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	status, msg := http.StatusInternalServerError, "internal server error"
	switch {
	case errors.Is(err, entities.ErrValidation),
		errors.Is(err, entities.ErrPasswordMismatch),
		errors.Is(err, entities.ErrEmptyPassword),
		errors.Is(err, entities.ErrInvalidInput):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, entities.ErrDuplicateEmail):
		status, msg = http.StatusConflict, entities.ErrDuplicateEmail.Error()
	case errors.Is(err, entities.ErrInvalidCredentials):
		status, msg = http.StatusUnauthorized, entities.ErrInvalidCredentials.Error()
	case errors.Is(err, entities.ErrUnauthenticated):
		status, msg = http.StatusUnauthorized, entities.ErrUnauthenticated.Error()
	case errors.Is(err, entities.ErrNotFound), errors.Is(err, entities.ErrForbidden):
		status, msg = http.StatusNotFound, entities.ErrNotFound.Error()
	case errors.Is(err, entities.ErrStorageFailure):
		msg = "file storage failure"
	}
	if status == http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request body",
		"details": err.Error(),
	})
}
