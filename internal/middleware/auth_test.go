package middleware

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/pkg/jwt"
)

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "abc", NormalizeToken("Bearer abc"))
	assert.Equal(t, "abc", NormalizeToken("abc"))
	assert.Equal(t, "", NormalizeToken(""))
}

func TestRevocationTTL(t *testing.T) {
	now := time.Now()

	// Issued long ago but still valid: the entry lives only as long as
	// the token does.
	claims := &jwt.Claims{RegisteredClaims: jwtlib.RegisteredClaims{
		IssuedAt:  jwtlib.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: jwtlib.NewNumericDate(now.Add(30 * time.Minute)),
	}}
	ttl := revocationTTL(claims, now)
	assert.InDelta(t, float64(30*time.Minute), float64(ttl), float64(time.Second))

	expired := &jwt.Claims{RegisteredClaims: jwtlib.RegisteredClaims{
		IssuedAt:  jwtlib.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: jwtlib.NewNumericDate(now.Add(-time.Minute)),
	}}
	assert.LessOrEqual(t, revocationTTL(expired, now), time.Duration(0))
}
