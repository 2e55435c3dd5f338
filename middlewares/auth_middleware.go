// middlewares/auth_middleware.go
package middlewares

import (
	"net/http"

	"sweatfix/models"
	"sweatfix/services"
	"sweatfix/utils"

	"github.com/gin-gonic/gin"
)

const SessionCookieName = "sf_session"

// UserFromRequest resolves the current identity from the session cookie.
// Used directly by routes that tolerate anonymous callers (/api/me).
func UserFromRequest(c *gin.Context) (*models.User, error) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return nil, err
	}
	userID, err := utils.ParseSessionToken(cookie)
	if err != nil {
		return nil, err
	}
	return services.FindUserByID(userID)
}

// AuthMiddleware rejects requests without a valid session before any store
// access, and injects the resolved identity into the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := UserFromRequest(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set("userID", user.ID)
		c.Set("currentUser", user)
		c.Next()
	}
}
