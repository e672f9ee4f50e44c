package application

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulearn/ai-teacher-api/internal/domain/entity"
	"github.com/edulearn/ai-teacher-api/internal/domain/repository"
	"github.com/edulearn/ai-teacher-api/internal/testutil"
	"github.com/edulearn/ai-teacher-api/pkg/apperr"
)

func newChildService(t *testing.T) *ChildService {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewChildService(testutil.NewMemChildRepository(), logger)
}

func createChild(t *testing.T, svc *ChildService, parentID, name string) *entity.Child {
	t.Helper()
	style := "visual"
	c, err := svc.Create(context.Background(), parentID, repository.ChildCreate{
		Name:          name,
		Grade:         "5th",
		Subjects:      []string{"math", "science"},
		LearningStyle: &style,
		Preferences:   map[string]any{"pace": "slow"},
	})
	require.NoError(t, err)
	return c
}

func TestCreateChild(t *testing.T) {
	svc := newChildService(t)

	c := createChild(t, svc, "parent-1", "Ada")
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "parent-1", c.ParentID)
	assert.Equal(t, "Ada", c.Name)
	assert.Equal(t, []string{"math", "science"}, c.Subjects)
	require.NotNil(t, c.LearningStyle)
	assert.Equal(t, "visual", *c.LearningStyle)
	assert.Equal(t, map[string]any{"pace": "slow"}, c.Preferences)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestCreateChildEmptySubjects(t *testing.T) {
	svc := newChildService(t)

	for _, subjects := range [][]string{nil, {}} {
		_, err := svc.Create(context.Background(), "parent-1", repository.ChildCreate{
			Name:     "Ada",
			Grade:    "5th",
			Subjects: subjects,
		})
		require.Error(t, err)
		assert.Equal(t, apperr.Validation, apperr.KindOf(err))
		assert.Equal(t, "at least one subject must be specified", apperr.DetailsOf(err)["subjects"])
	}
}

func TestGetChildOwnershipScoped(t *testing.T) {
	svc := newChildService(t)
	c := createChild(t, svc, "parent-1", "Ada")

	got, err := svc.Get(context.Background(), c.ID, "parent-1")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	// Another parent's lookup is indistinguishable from a missing profile.
	_, err = svc.Get(context.Background(), c.ID, "parent-2")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	_, err = svc.Get(context.Background(), "no-such-id", "parent-1")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestListChildrenPerParent(t *testing.T) {
	svc := newChildService(t)
	createChild(t, svc, "parent-1", "Ada")
	createChild(t, svc, "parent-1", "Ben")
	createChild(t, svc, "parent-2", "Cal")

	kids, err := svc.List(context.Background(), "parent-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, kids, 2)
	assert.Equal(t, "Ada", kids[0].Name)
	assert.Equal(t, "Ben", kids[1].Name)

	kids, err = svc.List(context.Background(), "parent-1", 1, 10)
	require.NoError(t, err)
	require.Len(t, kids, 1)
	assert.Equal(t, "Ben", kids[0].Name)

	kids, err = svc.List(context.Background(), "parent-3", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, kids)
}

func TestUpdateChildPartial(t *testing.T) {
	svc := newChildService(t)
	c := createChild(t, svc, "parent-1", "Ada")

	grade := "6th"
	got, err := svc.Update(context.Background(), c.ID, "parent-1", repository.ChildUpdate{Grade: &grade})
	require.NoError(t, err)

	assert.Equal(t, "6th", got.Grade)
	assert.Equal(t, c.Name, got.Name)
	assert.Equal(t, c.Subjects, got.Subjects)
	assert.Equal(t, c.LearningStyle, got.LearningStyle)
	assert.Equal(t, c.Preferences, got.Preferences)
}

func TestUpdateChildEmptySubjectsRejected(t *testing.T) {
	svc := newChildService(t)
	c := createChild(t, svc, "parent-1", "Ada")

	_, err := svc.Update(context.Background(), c.ID, "parent-1", repository.ChildUpdate{Subjects: []string{}})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	// Nothing was persisted.
	got, err := svc.Get(context.Background(), c.ID, "parent-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"math", "science"}, got.Subjects)
}

func TestUpdateChildCrossOwner(t *testing.T) {
	svc := newChildService(t)
	c := createChild(t, svc, "parent-1", "Ada")

	name := "Mallory"
	_, err := svc.Update(context.Background(), c.ID, "parent-2", repository.ChildUpdate{Name: &name})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	got, err := svc.Get(context.Background(), c.ID, "parent-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
}

func TestDeleteChild(t *testing.T) {
	svc := newChildService(t)
	c := createChild(t, svc, "parent-1", "Ada")

	// Cross-owner delete must not remove anything.
	_, err := svc.Delete(context.Background(), c.ID, "parent-2")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	got, err := svc.Delete(context.Background(), c.ID, "parent-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)

	_, err = svc.Get(context.Background(), c.ID, "parent-1")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
