package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/edulearn/ai-teacher-api/internal/domain/entity"
	"github.com/edulearn/ai-teacher-api/internal/domain/repository"
	"github.com/edulearn/ai-teacher-api/pkg/apperr"
	"github.com/edulearn/ai-teacher-api/pkg/helpers"
	"github.com/edulearn/ai-teacher-api/pkg/mailer"
)

// UserService implements registration, authentication and profile management
// for parent accounts.
type UserService struct {
	Repo    repository.UserRepository
	Tokens  *helpers.TokenManager
	Pub     *helpers.RabbitPublisher
	Logger  *logrus.Logger
	AppName string
}

func NewUserService(repo repository.UserRepository, tokens *helpers.TokenManager, pub *helpers.RabbitPublisher, logger *logrus.Logger, appName string) *UserService {
	return &UserService{Repo: repo, Tokens: tokens, Pub: pub, Logger: logger, AppName: appName}
}

type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// Register creates a new parent account. The email must be unique; both the
// pre-check and the database unique constraint report the same conflict.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if existing, err := s.Repo.GetByEmail(ctx, in.Email); err == nil && existing != nil {
		return nil, apperr.New(apperr.Conflict, "a user with this email already exists")
	} else if err != nil && apperr.KindOf(err) != apperr.NotFound {
		return nil, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "password hashing failed", err)
	}
	u := &entity.User{
		Email:          in.Email,
		Name:           in.Name,
		HashedPassword: hash,
		IsActive:       true,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}

	if s.Pub != nil {
		job := mailer.EmailJob{
			To:       u.Email,
			Template: "welcome",
			Data:     map[string]any{"app_name": s.AppName, "name": u.Name},
		}
		if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("enqueue welcome email failed")
		}
	}
	return u, nil
}

// Authenticate validates email/password and returns the user without issuing
// a token. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, apperr.New(apperr.InvalidCredentials, "incorrect email or password")
	}
	if !helpers.CheckPassword(u.HashedPassword, password) {
		return nil, apperr.New(apperr.InvalidCredentials, "incorrect email or password")
	}
	return u, nil
}

type LoginResult struct {
	User        *entity.User
	AccessToken string
	ExpiresAt   time.Time
}

// Login authenticates and issues an access token. An inactive account is
// reported distinctly here (and only here); token-based checks later
// collapse it into a generic authentication failure.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, apperr.New(apperr.InactiveAccount, "inactive user")
	}
	token, exp, err := s.Tokens.Issue(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("issue access token failed")
		}
		return nil, apperr.Wrap(apperr.Internal, "token generation failed", err)
	}
	return &LoginResult{User: u, AccessToken: token, ExpiresAt: exp}, nil
}

// GetProfile returns the user record for id.
func (s *UserService) GetProfile(ctx context.Context, id string) (*entity.User, error) {
	return s.Repo.GetByID(ctx, id)
}

type UpdateProfileInput struct {
	Name     *string
	Password *string
}

// UpdateProfile applies a partial update to the caller's own account.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil && *in.Name != "" {
		u.Name = *in.Name
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := helpers.HashPassword(*in.Password)
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, "password hashing failed", err)
		}
		u.HashedPassword = hash
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetUser returns the user with id, enforcing the self-or-superuser policy
// for the caller.
func (s *UserService) GetUser(ctx context.Context, caller *entity.User, id string) (*entity.User, error) {
	if caller == nil {
		return nil, apperr.New(apperr.Unauthenticated, "could not validate credentials")
	}
	if caller.ID != id && !caller.IsSuperuser {
		return nil, apperr.New(apperr.Forbidden, "not enough permissions to access this user")
	}
	return s.Repo.GetByID(ctx, id)
}

// ListUsers returns a page of all users. Callers must already have passed
// the superuser guard.
func (s *UserService) ListUsers(ctx context.Context, offset, limit int) ([]*entity.User, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return s.Repo.List(ctx, offset, limit)
}
