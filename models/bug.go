package models

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BugStatus enum
type BugStatus string

const (
	StatusOpen       BugStatus = "open"
	StatusInProgress BugStatus = "in-progress"
	StatusResolved   BugStatus = "resolved"
)

func (s BugStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// BugPriority enum
type BugPriority string

const (
	PriorityLow    BugPriority = "low"
	PriorityMedium BugPriority = "medium"
	PriorityHigh   BugPriority = "high"
)

func (p BugPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// DefaultAssignee is used when a bug is created without an assignee.
const DefaultAssignee = "Unassigned"

// Bug represents a tracked bug report
type Bug struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title       string              `bson:"title" json:"title"`
	Description string              `bson:"description" json:"description"`
	Status      BugStatus           `bson:"status" json:"status"`
	Priority    BugPriority         `bson:"priority" json:"priority"`
	Category    string              `bson:"category,omitempty" json:"category,omitempty"`
	Slug        string              `bson:"slug" json:"slug"`
	AuthorID    *primitive.ObjectID `bson:"author,omitempty" json:"author,omitempty"`
	AssignedTo  string              `bson:"assignedTo" json:"assignedTo"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

var whitespaceRuns = regexp.MustCompile(`\s+`)

// Slugify derives a bug's slug from its title: lowercase, with runs of
// whitespace collapsed to single hyphens. Computed once at creation and
// never recomputed, even if the title changes later.
func Slugify(title string) string {
	return whitespaceRuns.ReplaceAllString(strings.ToLower(title), "-")
}
