package store

import (
	"context"

	"bugtracker-be/models"
)

// BugFilter narrows a Query to bugs matching the given fields. Empty
// fields match everything.
type BugFilter struct {
	Category string
	Priority string
}

// BugUpdate carries the fields an update may change. Nil fields are
// left untouched. Slug and author are deliberately absent: they are
// immutable after creation and no update path can reach them.
type BugUpdate struct {
	Title       *string
	Description *string
	Status      *models.BugStatus
	Priority    *models.BugPriority
	Category    *string
	AssignedTo  *string
}

// BugStore is the persistence contract for bug records. Implementations
// report missing records as apperrors.NotFound and everything else as
// apperrors.Internal; callers surface store failures unchanged.
type BugStore interface {
	// Insert persists a new bug, assigning its id and timestamps, and
	// returns the stored record.
	Insert(ctx context.Context, bug models.Bug) (models.Bug, error)

	// GetByID returns the bug with the given id.
	GetByID(ctx context.Context, id string) (models.Bug, error)

	// Query returns at most limit bugs matching filter, skipping
	// (page-1)*limit matches, in insertion order. An empty result is a
	// normal, non-error outcome.
	Query(ctx context.Context, filter BugFilter, page, limit int) ([]models.Bug, error)

	// UpdateByID merges the non-nil fields of update into the existing
	// record and returns the updated bug.
	UpdateByID(ctx context.Context, id string, update BugUpdate) (models.Bug, error)

	// DeleteByID removes the bug with the given id.
	DeleteByID(ctx context.Context, id string) error

	// Close releases the store's underlying resources.
	Close(ctx context.Context) error
}
