package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
	"github.com/mamadbah2/poultryfarm/internal/service/auth"
)

// IdentityKey is the gin context key holding the authenticated auth.Identity.
const IdentityKey = "identity"

// Authenticator verifies bearer tokens.
type Authenticator interface {
	Authenticate(token string) (auth.Identity, error)
}

// RequireAuth rejects requests without a valid bearer token: a missing token
// yields 401, an invalid one 403.
func RequireAuth(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := authn.Authenticate(bearerToken(c.GetHeader("Authorization")))
		if err != nil {
			status := http.StatusForbidden
			if errors.Is(err, models.ErrAuth) {
				status = http.StatusUnauthorized
			}
			c.AbortWithStatusJSON(status, gin.H{
				"success": false,
				"message": models.PublicMessage(err, "Invalid token"),
			})
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// IdentityFrom returns the identity stored by RequireAuth.
func IdentityFrom(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return auth.Identity{}, false
	}
	identity, ok := v.(auth.Identity)
	return identity, ok
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
