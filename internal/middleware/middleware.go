// Package middleware holds the authorization gate and request logging.
package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nerdtalks/backend/internal/auth"
	"github.com/nerdtalks/backend/internal/models"
)

const claimsKey = "claims"

// UserResolver resolves a verified subject id to a stored user. The
// store's user repository satisfies it.
type UserResolver interface {
	GetByUID(ctx context.Context, uid string) (*models.User, error)
}

// RequireAuth resolves the Authorization header against the verifier.
// Missing or non-Bearer credentials are rejected 401 before any
// verification; a present but unverifiable token is rejected 403. The
// verifier is called exactly once per request.
func RequireAuth(verifier auth.Verifier, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authorization required"})
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authorization required"})
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			log.Debug("token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "invalid or expired token"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAdmin layers the role check on top of RequireAuth: the claim's
// subject must resolve to a stored user with the admin role.
func RequireAdmin(users UserResolver, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authorization required"})
			return
		}

		user, err := users.GetByUID(c.Request.Context(), claims.UID)
		if err != nil || user.Role != models.RoleAdmin {
			if err != nil {
				log.Debug("admin check failed", zap.String("uid", claims.UID), zap.Error(err))
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "admin access required"})
			return
		}

		c.Next()
	}
}

// ClaimsFrom returns the verified claims attached by RequireAuth.
func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

// RequestLogger logs one line per request.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}
