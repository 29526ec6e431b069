package http

import (
	"errors"
	"net/http"

	"chaseplus/internal/entity"
	"chaseplus/pkg/logger"

	"github.com/gin-gonic/gin"
)

// statusFor maps the domain error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrValidation),
		errors.Is(err, entity.ErrMissingImage),
		errors.Is(err, entity.ErrInvalidCategory):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, entity.ErrAssetStore):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, log *logger.Logger, action string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error("Failed to %s: %v", action, err)
		message := "Internal server error"
		if status == http.StatusBadGateway {
			message = "Image storage is unavailable"
		}
		c.JSON(status, gin.H{"error": message})
		return
	}

	body := gin.H{"error": err.Error()}
	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		body["error"] = verr.Error()
		body["field"] = verr.Field
	}
	var cerr *entity.CategoryError
	if errors.As(err, &cerr) {
		body["error"] = cerr.Error()
		body["field"] = "category"
	}
	if errors.Is(err, entity.ErrMissingImage) {
		body["error"] = entity.ErrMissingImage.Error()
		body["field"] = "image"
	}
	if status == http.StatusUnauthorized {
		body["error"] = "Authentication required"
	}
	c.JSON(status, body)
}
