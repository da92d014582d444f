package httptransport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"corebank/internal/domain/auth"
	platformerrors "corebank/internal/platform/errors"
)

// AuthHandlers exposes the token issuing and validation endpoints.
type AuthHandlers struct {
	issuer    *auth.Issuer
	validator *auth.Validator
}

// NewAuthHandlers wires the auth service's HTTP surface.
func NewAuthHandlers(issuer *auth.Issuer, validator *auth.Validator) *AuthHandlers {
	return &AuthHandlers{issuer: issuer, validator: validator}
}

// Register attaches the auth routes. Both are public: login carries
// credentials in the body and validate carries the token itself.
func (h *AuthHandlers) Register(router *Router) {
	router.Engine.POST("/auth/login", h.handleLogin)
	router.Engine.POST("/auth/validate", h.handleValidate)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandlers) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password required"})
		return
	}

	result, err := h.issuer.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) || platformerrors.IsKind(err, platformerrors.KindAuth) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      result.Token,
		"user_id":    result.UserID,
		"email":      result.Email,
		"expires_in": result.ExpiresIn,
	})
}

func (h *AuthHandlers) handleValidate(c *gin.Context) {
	identity, err := h.validator.Authorize(c.GetHeader(auth.HeaderAuthorization))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"valid": false,
			"error": "Invalid token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":   true,
		"user_id": identity.UserID,
	})
}
