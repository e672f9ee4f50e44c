package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/edulearn/ai-teacher-api/internal/domain/entity"
	"github.com/edulearn/ai-teacher-api/internal/domain/repository"
	"github.com/edulearn/ai-teacher-api/pkg/apperr"
)

// ChildService exposes the ownership-scoped CRUD operations for child
// profiles. The parent id always comes from the authenticated caller, so a
// parent can never see or touch another parent's children.
type ChildService struct {
	Repo   repository.ChildRepository
	Logger *logrus.Logger
}

func NewChildService(repo repository.ChildRepository, logger *logrus.Logger) *ChildService {
	return &ChildService{Repo: repo, Logger: logger}
}

func subjectsValid(subjects []string) error {
	if len(subjects) == 0 {
		return apperr.WithDetails(apperr.Validation, "invalid child profile",
			map[string]string{"subjects": "at least one subject must be specified"})
	}
	return nil
}

// Create validates and persists a new child profile for parentID.
func (s *ChildService) Create(ctx context.Context, parentID string, in repository.ChildCreate) (*entity.Child, error) {
	if err := subjectsValid(in.Subjects); err != nil {
		return nil, err
	}
	c, err := s.Repo.Create(ctx, parentID, in)
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"child_id": c.ID, "parent_id": parentID}).Info("child profile created")
	}
	return c, nil
}

// Get returns the child only when it belongs to parentID.
func (s *ChildService) Get(ctx context.Context, id, parentID string) (*entity.Child, error) {
	return s.Repo.GetOwned(ctx, id, parentID)
}

// List returns a page of the parent's children. Defaults: offset 0,
// limit 100.
func (s *ChildService) List(ctx context.Context, parentID string, offset, limit int) ([]*entity.Child, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return s.Repo.ListOwned(ctx, parentID, offset, limit)
}

// Update applies a partial update after re-checking ownership and the
// non-empty subjects invariant. Nothing is persisted when validation fails.
func (s *ChildService) Update(ctx context.Context, id, parentID string, in repository.ChildUpdate) (*entity.Child, error) {
	existing, err := s.Repo.GetOwned(ctx, id, parentID)
	if err != nil {
		return nil, err
	}
	if in.Subjects != nil {
		if err := subjectsValid(in.Subjects); err != nil {
			return nil, err
		}
	}
	return s.Repo.Update(ctx, existing, in)
}

// Delete removes the child profile and returns its last-known state.
// Dependent session and quiz rows cascade at the schema level.
func (s *ChildService) Delete(ctx context.Context, id, parentID string) (*entity.Child, error) {
	c, err := s.Repo.Delete(ctx, id, parentID)
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"child_id": id, "parent_id": parentID}).Info("child profile deleted")
	}
	return c, nil
}
