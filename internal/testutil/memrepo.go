// Package testutil provides in-memory repository implementations used by
// service, middleware and handler tests. They mirror the Postgres
// repositories' semantics: ownership-scoped lookups report not-found for
// foreign rows, mutations return fresh snapshots, and listings keep
// insertion order.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/edulearn/ai-teacher-api/internal/domain/entity"
	"github.com/edulearn/ai-teacher-api/internal/domain/repository"
	"github.com/edulearn/ai-teacher-api/pkg/apperr"
)

func cloneUser(u *entity.User) *entity.User {
	cp := *u
	return &cp
}

func cloneChild(c *entity.Child) *entity.Child {
	cp := *c
	cp.Subjects = append([]string(nil), c.Subjects...)
	if c.LearningStyle != nil {
		ls := *c.LearningStyle
		cp.LearningStyle = &ls
	}
	cp.Preferences = make(map[string]any, len(c.Preferences))
	for k, v := range c.Preferences {
		cp.Preferences[k] = v
	}
	return &cp
}

// MemUserRepository is an in-memory repository.UserRepository.
type MemUserRepository struct {
	mu    sync.Mutex
	users []*entity.User
}

func NewMemUserRepository() *MemUserRepository {
	return &MemUserRepository{}
}

func (r *MemUserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.users {
		if e.Email == u.Email {
			return apperr.New(apperr.Conflict, "a user with this email already exists")
		}
	}
	now := time.Now()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users = append(r.users, cloneUser(u))
	return nil
}

func (r *MemUserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.users {
		if e.ID == id {
			return cloneUser(e), nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "user not found")
}

func (r *MemUserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.users {
		if e.Email == email {
			return cloneUser(e), nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "user not found")
}

func (r *MemUserRepository) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.users {
		if e.ID == u.ID {
			u.UpdatedAt = time.Now()
			r.users[i] = cloneUser(u)
			return nil
		}
	}
	return apperr.New(apperr.NotFound, "user not found")
}

func (r *MemUserRepository) List(_ context.Context, offset, limit int) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0)
	for i := offset; i < len(r.users) && len(out) < limit; i++ {
		out = append(out, cloneUser(r.users[i]))
	}
	return out, nil
}

// SetActive flips the active flag directly, bypassing the service layer.
func (r *MemUserRepository) SetActive(id string, active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.users {
		if e.ID == id {
			e.IsActive = active
		}
	}
}

// SetSuperuser flips the superuser flag directly.
func (r *MemUserRepository) SetSuperuser(id string, super bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.users {
		if e.ID == id {
			e.IsSuperuser = super
		}
	}
}

var _ repository.UserRepository = (*MemUserRepository)(nil)

// MemChildRepository is an in-memory repository.ChildRepository.
type MemChildRepository struct {
	mu       sync.Mutex
	children []*entity.Child
}

func NewMemChildRepository() *MemChildRepository {
	return &MemChildRepository{}
}

func (r *MemChildRepository) Create(_ context.Context, ownerID string, in repository.ChildCreate) (*entity.Child, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	prefs := in.Preferences
	if prefs == nil {
		prefs = map[string]any{}
	}
	c := &entity.Child{
		ID:            uuid.NewString(),
		ParentID:      ownerID,
		Name:          in.Name,
		Grade:         in.Grade,
		Subjects:      append([]string(nil), in.Subjects...),
		LearningStyle: in.LearningStyle,
		Preferences:   prefs,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	r.children = append(r.children, cloneChild(c))
	return c, nil
}

func (r *MemChildRepository) GetOwned(_ context.Context, id, ownerID string) (*entity.Child, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.children {
		if e.ID == id && e.ParentID == ownerID {
			return cloneChild(e), nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "child profile not found")
}

func (r *MemChildRepository) ListOwned(_ context.Context, ownerID string, offset, limit int) ([]*entity.Child, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	owned := make([]*entity.Child, 0)
	for _, e := range r.children {
		if e.ParentID == ownerID {
			owned = append(owned, e)
		}
	}
	out := make([]*entity.Child, 0)
	for i := offset; i < len(owned) && len(out) < limit; i++ {
		out = append(out, cloneChild(owned[i]))
	}
	return out, nil
}

func (r *MemChildRepository) Update(_ context.Context, existing *entity.Child, in repository.ChildUpdate) (*entity.Child, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.children {
		if e.ID == existing.ID && e.ParentID == existing.ParentID {
			next := cloneChild(e)
			if in.Name != nil {
				next.Name = *in.Name
			}
			if in.Grade != nil {
				next.Grade = *in.Grade
			}
			if in.Subjects != nil {
				next.Subjects = append([]string(nil), in.Subjects...)
			}
			if in.LearningStyle != nil {
				ls := *in.LearningStyle
				next.LearningStyle = &ls
			}
			if in.Preferences != nil {
				next.Preferences = in.Preferences
			}
			next.UpdatedAt = time.Now()
			r.children[i] = cloneChild(next)
			return next, nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "child profile not found")
}

func (r *MemChildRepository) Delete(_ context.Context, id, ownerID string) (*entity.Child, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.children {
		if e.ID == id && e.ParentID == ownerID {
			r.children = append(r.children[:i], r.children[i+1:]...)
			return cloneChild(e), nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "child profile not found")
}

var _ repository.ChildRepository = (*MemChildRepository)(nil)
