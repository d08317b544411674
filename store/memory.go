package store

import (
	"context"
	"sync"
	"time"

	"bugtracker-be/apperrors"
	"bugtracker-be/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process BugStore used by tests and by the
// STORE_DRIVER=memory development mode. Records are kept in insertion
// order, matching the Query contract.
type MemoryStore struct {
	mu   sync.Mutex
	bugs []models.Bug
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Insert(ctx context.Context, bug models.Bug) (models.Bug, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	bug.ID = primitive.NewObjectID()
	bug.CreatedAt = now
	bug.UpdatedAt = now

	s.bugs = append(s.bugs, bug)
	return bug, nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id string) (models.Bug, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Bug{}, apperrors.NewNotFound("Bug not found")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, bug := range s.bugs {
		if bug.ID == objectID {
			return bug, nil
		}
	}
	return models.Bug{}, apperrors.NewNotFound("Bug not found")
}

func (s *MemoryStore) Query(ctx context.Context, filter BugFilter, page, limit int) ([]models.Bug, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	skip := (page - 1) * limit
	matched := 0
	results := make([]models.Bug, 0, limit)

	for _, bug := range s.bugs {
		if filter.Category != "" && bug.Category != filter.Category {
			continue
		}
		if filter.Priority != "" && string(bug.Priority) != filter.Priority {
			continue
		}
		matched++
		if matched <= skip {
			continue
		}
		if len(results) == limit {
			break
		}
		results = append(results, bug)
	}
	return results, nil
}

func (s *MemoryStore) UpdateByID(ctx context.Context, id string, update BugUpdate) (models.Bug, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Bug{}, apperrors.NewNotFound("Bug not found")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bugs {
		if s.bugs[i].ID != objectID {
			continue
		}
		bug := &s.bugs[i]
		if update.Title != nil {
			bug.Title = *update.Title
		}
		if update.Description != nil {
			bug.Description = *update.Description
		}
		if update.Status != nil {
			bug.Status = *update.Status
		}
		if update.Priority != nil {
			bug.Priority = *update.Priority
		}
		if update.Category != nil {
			bug.Category = *update.Category
		}
		if update.AssignedTo != nil {
			bug.AssignedTo = *update.AssignedTo
		}
		bug.UpdatedAt = time.Now()
		return *bug, nil
	}
	return models.Bug{}, apperrors.NewNotFound("Bug not found")
}

func (s *MemoryStore) DeleteByID(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NewNotFound("Bug not found")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bugs {
		if s.bugs[i].ID == objectID {
			s.bugs = append(s.bugs[:i], s.bugs[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFound("Bug not found")
}

func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}
