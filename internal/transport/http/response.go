package httptransport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	platformerrors "corebank/internal/platform/errors"
)

// respondError maps a domain error onto the wire. Client-safe kinds carry
// their own message; anything else collapses into a generic body so no
// internal detail leaks.
func respondError(c *gin.Context, err error) {
	status := platformerrors.HTTPStatus(err)

	var message string
	switch status {
	case http.StatusServiceUnavailable:
		message = "Database unavailable"
	case http.StatusInternalServerError:
		message = "Internal server error"
	default:
		message = clientMessage(err, status)
	}

	c.JSON(status, gin.H{"error": message})
}

func clientMessage(err error, status int) string {
	var typed *platformerrors.Error
	if errors.As(err, &typed) && typed.Message != "" {
		return typed.Message
	}
	return http.StatusText(status)
}
