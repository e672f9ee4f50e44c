package entity

import (
	"time"
)

// Child is a student profile owned by exactly one parent. Subjects is never
// empty; that invariant is checked at binding time and again before any
// write. Preferences is a free-form JSON mapping (response style, example
// types, and whatever future phases need).
type Child struct {
	ID            string         `json:"id"`
	ParentID      string         `json:"parent_id"`
	Name          string         `json:"name"`
	Grade         string         `json:"grade"`
	Subjects      []string       `json:"subjects"`
	LearningStyle *string        `json:"learning_style"`
	Preferences   map[string]any `json:"preferences"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
