package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edulearn/ai-teacher-api/internal/domain/entity"
	"github.com/edulearn/ai-teacher-api/internal/domain/repository"
	"github.com/edulearn/ai-teacher-api/pkg/helpers"
	"github.com/edulearn/ai-teacher-api/pkg/response"
)

const (
	CtxUserKey   = "currentUser"
	CtxUserIDKey = "userID"
)

// Auth is the single gate between an unauthenticated request and any
// protected route. It reads the Authorization: Bearer header, verifies the
// token, then re-checks the subject against live user state: the user must
// still exist and still be active. Every failure mode gets the same generic
// 401 so the middleware never acts as an account-state oracle.
func Auth(users repository.UserRepository, tokens *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, "could not validate credentials", nil)
			return
		}
		subject, err := tokens.Verify(token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "could not validate credentials", nil)
			return
		}
		u, err := users.GetByID(c.Request.Context(), subject)
		if err != nil || u == nil || !u.IsActive {
			response.Abort(c, http.StatusUnauthorized, "could not validate credentials", nil)
			return
		}
		c.Set(CtxUserKey, u)
		c.Set(CtxUserIDKey, u.ID)
		c.Next()
	}
}

// RequireSuperuser guards admin-only routes. It must run after Auth.
func RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			response.Abort(c, http.StatusUnauthorized, "could not validate credentials", nil)
			return
		}
		if !u.IsSuperuser {
			response.Abort(c, http.StatusForbidden, "not enough permissions", nil)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Auth, or nil.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
