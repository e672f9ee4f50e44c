package application

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulearn/ai-teacher-api/internal/testutil"
	"github.com/edulearn/ai-teacher-api/pkg/apperr"
	"github.com/edulearn/ai-teacher-api/pkg/helpers"
)

func newUserService(t *testing.T) (*UserService, *testutil.MemUserRepository) {
	t.Helper()
	tokens, err := helpers.NewTokenManager("test-secret", "HS256", 30*time.Minute)
	require.NoError(t, err)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	repo := testutil.NewMemUserRepository()
	return NewUserService(repo, tokens, nil, logger, "edulearn"), repo
}

func registerParent(t *testing.T, svc *UserService, email string) string {
	t.Helper()
	u, err := svc.Register(context.Background(), RegisterInput{
		Email:    email,
		Name:     "Parent",
		Password: "password123",
	})
	require.NoError(t, err)
	return u.ID
}

func TestRegister(t *testing.T) {
	svc, _ := newUserService(t)

	u, err := svc.Register(context.Background(), RegisterInput{
		Email:    "parent@example.com",
		Name:     "Parent One",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "parent@example.com", u.Email)
	assert.True(t, u.IsActive)
	assert.False(t, u.IsSuperuser)
	assert.NotEqual(t, "password123", u.HashedPassword)
	assert.True(t, helpers.CheckPassword(u.HashedPassword, "password123"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newUserService(t)
	registerParent(t, svc, "parent@example.com")

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "parent@example.com",
		Name:     "Someone Else",
		Password: "otherpassword",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
}

func TestLogin(t *testing.T) {
	svc, _ := newUserService(t)
	id := registerParent(t, svc, "parent@example.com")

	res, err := svc.Login(context.Background(), "parent@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, id, res.User.ID)
	assert.NotEmpty(t, res.AccessToken)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), res.ExpiresAt, 5*time.Second)

	subject, err := svc.Tokens.Verify(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, id, subject)
}

func TestLoginBadCredentialsIndistinguishable(t *testing.T) {
	svc, _ := newUserService(t)
	registerParent(t, svc, "parent@example.com")

	_, wrongPass := svc.Login(context.Background(), "parent@example.com", "wrongpassword")
	require.Error(t, wrongPass)
	_, unknownEmail := svc.Login(context.Background(), "nobody@example.com", "password123")
	require.Error(t, unknownEmail)

	assert.Equal(t, apperr.InvalidCredentials, apperr.KindOf(wrongPass))
	assert.Equal(t, apperr.InvalidCredentials, apperr.KindOf(unknownEmail))
	assert.Equal(t, wrongPass.Error(), unknownEmail.Error())
}

func TestLoginInactiveAccount(t *testing.T) {
	svc, repo := newUserService(t)
	id := registerParent(t, svc, "parent@example.com")
	repo.SetActive(id, false)

	_, err := svc.Login(context.Background(), "parent@example.com", "password123")
	require.Error(t, err)
	assert.Equal(t, apperr.InactiveAccount, apperr.KindOf(err))
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, _ := newUserService(t)
	id := registerParent(t, svc, "parent@example.com")

	name := "Renamed Parent"
	u, err := svc.UpdateProfile(context.Background(), id, UpdateProfileInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Parent", u.Name)
	assert.True(t, helpers.CheckPassword(u.HashedPassword, "password123"))

	pass := "newpassword456"
	u, err = svc.UpdateProfile(context.Background(), id, UpdateProfileInput{Password: &pass})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Parent", u.Name)
	assert.True(t, helpers.CheckPassword(u.HashedPassword, "newpassword456"))

	_, err = svc.Login(context.Background(), "parent@example.com", "newpassword456")
	assert.NoError(t, err)
}

func TestGetUserSelfOrSuperuser(t *testing.T) {
	svc, repo := newUserService(t)
	aliceID := registerParent(t, svc, "alice@example.com")
	bobID := registerParent(t, svc, "bob@example.com")
	adminID := registerParent(t, svc, "admin@example.com")
	repo.SetSuperuser(adminID, true)

	ctx := context.Background()
	alice, err := svc.GetProfile(ctx, aliceID)
	require.NoError(t, err)
	admin, err := svc.GetProfile(ctx, adminID)
	require.NoError(t, err)

	got, err := svc.GetUser(ctx, alice, aliceID)
	require.NoError(t, err)
	assert.Equal(t, aliceID, got.ID)

	_, err = svc.GetUser(ctx, alice, bobID)
	require.Error(t, err)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	got, err = svc.GetUser(ctx, admin, bobID)
	require.NoError(t, err)
	assert.Equal(t, bobID, got.ID)
}

func TestListUsersClampsPaging(t *testing.T) {
	svc, _ := newUserService(t)
	registerParent(t, svc, "a@example.com")
	registerParent(t, svc, "b@example.com")
	registerParent(t, svc, "c@example.com")

	users, err := svc.ListUsers(context.Background(), -5, 0)
	require.NoError(t, err)
	assert.Len(t, users, 3)

	users, err = svc.ListUsers(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "b@example.com", users[0].Email)
}
