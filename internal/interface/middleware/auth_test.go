package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulearn/ai-teacher-api/internal/domain/entity"
	"github.com/edulearn/ai-teacher-api/internal/testutil"
	"github.com/edulearn/ai-teacher-api/pkg/helpers"
)

func newAuthRig(t *testing.T) (*gin.Engine, *testutil.MemUserRepository, *helpers.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokens, err := helpers.NewTokenManager("test-secret", "HS256", 30*time.Minute)
	require.NoError(t, err)
	repo := testutil.NewMemUserRepository()

	r := gin.New()
	protected := r.Group("/", Auth(repo, tokens))
	protected.GET("/whoami", func(c *gin.Context) {
		u := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": u.ID, "email": u.Email})
	})
	protected.GET("/admin", RequireSuperuser(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, repo, tokens
}

func seedUser(t *testing.T, repo *testutil.MemUserRepository, email string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Name: "Parent", HashedPassword: "x", IsActive: true}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func doGet(r *gin.Engine, path, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthValidToken(t *testing.T) {
	r, repo, tokens := newAuthRig(t)
	u := seedUser(t, repo, "parent@example.com")
	token, _, err := tokens.Issue(u.ID)
	require.NoError(t, err)

	w := doGet(r, "/whoami", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), u.ID)
}

func TestAuthGenericFailures(t *testing.T) {
	r, repo, tokens := newAuthRig(t)
	u := seedUser(t, repo, "parent@example.com")

	expired, _, err := tokens.IssueWithTTL(u.ID, -time.Minute)
	require.NoError(t, err)
	unknownSubject, _, err := tokens.Issue("no-such-user")
	require.NoError(t, err)
	valid, _, err := tokens.Issue(u.ID)
	require.NoError(t, err)

	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc123",
		"empty token":    "Bearer ",
		"garbage token":  "Bearer garbage",
		"expired token":  "Bearer " + expired,
		"deleted user":   "Bearer " + unknownSubject,
	}
	for name, authz := range cases {
		w := doGet(r, "/whoami", authz)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
		assert.Contains(t, w.Body.String(), "could not validate credentials", name)
	}

	// Deactivation collapses into the same generic failure.
	repo.SetActive(u.ID, false)
	w := doGet(r, "/whoami", "Bearer "+valid)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "could not validate credentials")
}

func TestRequireSuperuser(t *testing.T) {
	r, repo, tokens := newAuthRig(t)
	parent := seedUser(t, repo, "parent@example.com")
	admin := seedUser(t, repo, "admin@example.com")
	repo.SetSuperuser(admin.ID, true)

	parentToken, _, err := tokens.Issue(parent.ID)
	require.NoError(t, err)
	adminToken, _, err := tokens.Issue(admin.ID)
	require.NoError(t, err)

	w := doGet(r, "/admin", "Bearer "+parentToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doGet(r, "/admin", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
