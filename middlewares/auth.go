package middlewares

import (
	"context"
	"net/http"
	"strings"

	"cafestaff/entity"
	"cafestaff/pkg/resp"
	"cafestaff/utils"

	"github.com/gin-gonic/gin"
)

// SessionResolver turns a session token into a staff member.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*entity.Staff, error)
}

// LoadSession reads the session cookie (or a bearer token) and stores the
// staff member in the context. Requests without a valid session carry on
// anonymously.
func LoadSession(auth SessionResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c, cookieName)
		if token == "" {
			c.Next()
			return
		}
		staff, err := auth.ResolveSession(c.Request.Context(), token)
		if err == nil {
			c.Set(utils.StaffKey, staff)
		}
		c.Next()
	}
}

func sessionToken(c *gin.Context, cookieName string) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if v, err := c.Cookie(cookieName); err == nil {
		return v
	}
	return ""
}

// RequireStaff rejects anonymous requests: 401 for JSON clients, a 403 page
// for browsers.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if utils.CurrentStaff(c) != nil {
			c.Next()
			return
		}
		if resp.WantsJSON(c) {
			resp.Unauthorized(c, "login required")
		} else {
			resp.Fail(c, http.StatusForbidden, "You need to sign in to view this page.")
		}
		c.Abort()
	}
}
