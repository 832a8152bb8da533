package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/pkg/jwt"
	pkgredis "github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/pkg/redis"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

const (
	ContextKeyUserID = "user_id"

	revokedKeyPrefix = "um:revoked_token:"
)

// Auth returns a middleware that enforces JWT authentication. Tokens revoked
// through Logout are rejected via the Redis deny list.
func Auth(rc *pkgredis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := validateToken(c.Request.Context(), rc, extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// CurrentUserID extracts the authenticated user ID from context.
func CurrentUserID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(string)
	return id
}

// RevokeToken puts a token's jti on the deny list until it would expire
// anyway.
func RevokeToken(ctx context.Context, rc *pkgredis.Client, rawToken string) error {
	claims, err := jwt.Parse(NormalizeToken(rawToken))
	if err != nil {
		return err
	}
	ttl := revocationTTL(claims, time.Now())
	if ttl <= 0 {
		return nil
	}
	return rc.Set(ctx, revokedKeyPrefix+claims.ID, 1, ttl)
}

// revocationTTL keeps a deny-list entry only for the token's remaining
// lifetime, not its full issued span.
func revocationTTL(claims *jwt.Claims, now time.Time) time.Duration {
	return claims.ExpiresAt.Time.Sub(now)
}

func validateToken(ctx context.Context, rc *pkgredis.Client, rawToken string) (*jwt.Claims, error) {
	token := NormalizeToken(rawToken)
	if token == "" {
		return nil, errTokenRequired
	}

	claims, err := jwt.Parse(token)
	if err != nil {
		return nil, err
	}
	if claims.ID != "" {
		if revoked, err := rc.Exists(ctx, revokedKeyPrefix+claims.ID); err == nil && revoked {
			return nil, errTokenRevoked
		}
	}
	return claims, nil
}

func extractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth != "" {
		return NormalizeToken(auth)
	}
	return NormalizeToken(c.Query("token"))
}

// NormalizeToken trims spaces and strips optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
