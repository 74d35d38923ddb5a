package middleware

import (
	"net/http"

	"tour-booking/services"

	"github.com/gin-gonic/gin"
)

// SessionCookie carries the opaque session token.
const SessionCookie = "tour_session"

const identityKey = "adminUser"

// RequireAdmin rejects requests without a live admin session. Routes that
// carry a :username parameter additionally require it to match the
// session's identity.
func RequireAdmin(store *services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		username, ok := store.Lookup(token)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if want := c.Param("username"); want != "" && want != username {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(identityKey, username)
		c.Next()
	}
}

// AdminUser returns the identity set by RequireAdmin.
func AdminUser(c *gin.Context) string {
	v, _ := c.Get(identityKey)
	username, _ := v.(string)
	return username
}
