package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"corebank/internal/domain/auth"
	"corebank/internal/platform/logging"
	"corebank/internal/platform/metrics"
)

const (
	headerRequestID = "X-Request-ID"

	contextKeyIdentity = "identity"
)

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

// instrumentationMiddleware records one metric sample per completed
// request. The start timestamp lives in this frame, never in shared
// state, so concurrent requests cannot observe each other's timing. The
// after-phase runs when c.Next returns, which covers success, handled
// errors and recovered panics alike.
func instrumentationMiddleware(reg *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			// Unmatched paths collapse into one label to keep
			// cardinality bounded.
			endpoint = "unrouted"
		}
		reg.ObserveRequest(c.Request.Method, endpoint, c.Writer.Status(), time.Since(start))
	}
}

func loggingMiddleware(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Slog().Info("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", c.GetString("request_id")),
		)
	}
}

// AuthMiddleware gates every protected route. It runs before any
// collaborator is touched: a missing or invalid token never reaches a
// handler, so no store access happens for rejected requests.
func AuthMiddleware(validator *auth.Validator, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := validator.Authorize(c.GetHeader(auth.HeaderAuthorization))
		if err != nil {
			reason := auth.ReasonOf(err)
			logger.Slog().Warn("request rejected",
				slog.String("reason", string(reason)),
				slog.String("request_id", c.GetString("request_id")),
			)
			message := "Token is invalid"
			if reason == auth.ReasonMissing {
				message = "Token is missing"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
			return
		}
		c.Set(contextKeyIdentity, identity)
		c.Next()
	}
}

// IdentityFrom extracts the authenticated identity the gate stored.
func IdentityFrom(c *gin.Context) (auth.Identity, bool) {
	value, ok := c.Get(contextKeyIdentity)
	if !ok {
		return auth.Identity{}, false
	}
	identity, ok := value.(auth.Identity)
	return identity, ok
}
