package repository

import (
	"github.com/edulearn/ai-teacher-api/internal/domain/entity"
)

// ChildCreate carries the caller-supplied fields for a new child profile.
// ParentID is never part of the input; it is injected from the authenticated
// caller.
type ChildCreate struct {
	Name          string
	Grade         string
	Subjects      []string
	LearningStyle *string
	Preferences   map[string]any
}

// ChildUpdate is a partial update: nil fields are left untouched.
// A non-nil empty Subjects slice is a validation error, caught before this
// struct reaches the repository.
type ChildUpdate struct {
	Name          *string
	Grade         *string
	Subjects      []string
	LearningStyle *string
	Preferences   map[string]any
}

// ChildRepository is the ownership-scoped data access contract for child
// profiles.
type ChildRepository interface {
	Owned[entity.Child, ChildCreate, ChildUpdate]
}
