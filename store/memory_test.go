package store

import (
	"context"
	"testing"

	"bugtracker-be/apperrors"
	"bugtracker-be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedBug(t *testing.T, s *MemoryStore, title, category string, priority models.BugPriority) models.Bug {
	t.Helper()
	bug, err := s.Insert(context.Background(), models.Bug{
		Title:       title,
		Description: "a description",
		Status:      models.StatusOpen,
		Priority:    priority,
		Category:    category,
		Slug:        models.Slugify(title),
		AssignedTo:  models.DefaultAssignee,
	})
	require.NoError(t, err)
	return bug
}

func TestMemoryInsertAssignsIDAndTimestamps(t *testing.T) {
	s := NewMemoryStore()
	bug := seedBug(t, s, "Crash on save", "ui", models.PriorityHigh)

	assert.False(t, bug.ID.IsZero())
	assert.False(t, bug.CreatedAt.IsZero())
	assert.False(t, bug.UpdatedAt.IsZero())

	got, err := s.GetByID(context.Background(), bug.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, bug.Title, got.Title)
}

func TestMemoryGetByIDNotFound(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.GetByID(context.Background(), primitive.NewObjectID().Hex())
	appErr := apperrors.From(err)
	assert.Equal(t, apperrors.NotFound, appErr.Kind)

	// Malformed ids are indistinguishable from absent records.
	_, err = s.GetByID(context.Background(), "not-a-hex-id")
	assert.Equal(t, apperrors.NotFound, apperrors.From(err).Kind)
}

func TestMemoryQueryPagination(t *testing.T) {
	s := NewMemoryStore()
	var inserted []models.Bug
	for i := 0; i < 15; i++ {
		inserted = append(inserted, seedBug(t, s, "Bug", "", models.PriorityMedium))
	}

	pageOne, err := s.Query(context.Background(), BugFilter{}, 1, 10)
	require.NoError(t, err)
	pageTwo, err := s.Query(context.Background(), BugFilter{}, 2, 10)
	require.NoError(t, err)

	assert.Len(t, pageOne, 10)
	assert.Len(t, pageTwo, 5)

	seen := map[primitive.ObjectID]bool{}
	for _, bug := range append(pageOne, pageTwo...) {
		assert.False(t, seen[bug.ID], "pages must be disjoint")
		seen[bug.ID] = true
	}

	// Insertion order is preserved across pages.
	assert.Equal(t, inserted[0].ID, pageOne[0].ID)
	assert.Equal(t, inserted[10].ID, pageTwo[0].ID)
}

func TestMemoryQueryFilters(t *testing.T) {
	s := NewMemoryStore()
	seedBug(t, s, "One", "backend", models.PriorityHigh)
	seedBug(t, s, "Two", "frontend", models.PriorityHigh)
	seedBug(t, s, "Three", "backend", models.PriorityLow)

	byCategory, err := s.Query(context.Background(), BugFilter{Category: "backend"}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	both, err := s.Query(context.Background(), BugFilter{Category: "backend", Priority: "high"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "One", both[0].Title)

	none, err := s.Query(context.Background(), BugFilter{Category: "missing"}, 1, 10)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMemoryUpdateByIDMergesFields(t *testing.T) {
	s := NewMemoryStore()
	bug := seedBug(t, s, "Original title", "backend", models.PriorityLow)

	status := models.StatusResolved
	updated, err := s.UpdateByID(context.Background(), bug.ID.Hex(), BugUpdate{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, models.StatusResolved, updated.Status)
	assert.Equal(t, "Original title", updated.Title)
	assert.Equal(t, bug.Slug, updated.Slug)
	assert.Equal(t, bug.Priority, updated.Priority)

	// Title changes never recompute the slug.
	newTitle := "A completely different title"
	updated, err = s.UpdateByID(context.Background(), bug.ID.Hex(), BugUpdate{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, "original-title", updated.Slug)
}

func TestMemoryUpdateByIDNotFound(t *testing.T) {
	s := NewMemoryStore()
	title := "whatever"
	_, err := s.UpdateByID(context.Background(), primitive.NewObjectID().Hex(), BugUpdate{Title: &title})
	assert.Equal(t, apperrors.NotFound, apperrors.From(err).Kind)
}

func TestMemoryDeleteByID(t *testing.T) {
	s := NewMemoryStore()
	bug := seedBug(t, s, "Doomed", "", models.PriorityMedium)

	require.NoError(t, s.DeleteByID(context.Background(), bug.ID.Hex()))

	_, err := s.GetByID(context.Background(), bug.ID.Hex())
	assert.Equal(t, apperrors.NotFound, apperrors.From(err).Kind)

	// Deleting an already-deleted id is NotFound, not a crash.
	err = s.DeleteByID(context.Background(), bug.ID.Hex())
	assert.Equal(t, apperrors.NotFound, apperrors.From(err).Kind)
}
