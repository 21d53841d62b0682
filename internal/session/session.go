package session

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// A visitor's scope plays the role the browser origin played for the old
// widget: it selects their slice of the persistent store. No identity or
// authentication is attached to it.
const (
	cookieName = "cart_scope"
	contextKey = "cartScope"
	maxAge     = 365 * 24 * 60 * 60 // seconds
)

// Middleware ensures every request carries a scope, minting a new UUID
// cookie for first-time visitors.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, err := c.Cookie(cookieName)
		if err != nil || scope == "" {
			scope = uuid.NewString()
			c.SetCookie(cookieName, scope, maxAge, "/", "", false, true)
		}
		c.Set(contextKey, scope)
		c.Next()
	}
}

// Scope returns the request's visitor scope.
func Scope(c *gin.Context) string {
	scope, _ := c.Get(contextKey)
	s, _ := scope.(string)
	return s
}
