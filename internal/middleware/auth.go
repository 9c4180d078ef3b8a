package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/flicky/eatsy-store/internal/model"
)

const userKey = "currentUser"

// Session reports who is logged in to the store.
type Session interface {
	CurrentUser() *model.User
}

// RequireRole rejects requests while nobody is logged in, and requests from
// users whose role is not listed. With no roles any logged-in user passes.
func RequireRole(session Session, roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := session.CurrentUser()
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if len(roles) > 0 && !slices.Contains(roles, user.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

func GetUser(c *gin.Context) *model.User {
	v, _ := c.Get(userKey)
	u, _ := v.(*model.User)
	return u
}
