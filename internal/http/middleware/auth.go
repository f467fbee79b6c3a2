package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/you/marketsvc/domain"
)

// Context keys set by the auth middleware for downstream handlers.
const (
	CtxUser     = "user"
	CtxUserID   = "user_id"
	CtxUserRole = "user_role"
)

// AuthMW wraps the access guard for middleware use
type AuthMW struct {
	guard domain.AccessGuard
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(guard domain.AccessGuard) *AuthMW {
	return &AuthMW{guard: guard}
}

// WithAuth returns middleware that resolves the bearer token into a verified
// user. Every rejection reads the same to the caller; the guard logs the
// actual cause.
func (mw *AuthMW) WithAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			c.Abort()
			return
		}

		user, err := mw.guard.Authenticate(c.Request.Context(), token)
		if err != nil {
			if domain.IsTransient(err) {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporarily unavailable"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			}
			c.Abort()
			return
		}

		c.Set(CtxUser, user)
		c.Set(CtxUserID, user.ID.String())
		c.Set(CtxUserRole, string(user.Role))
		c.Next()
	}
}

// BearerToken extracts the opaque token from the Authorization header.
func BearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// CurrentUser returns the verified user placed in the context by WithAuth.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(CtxUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
