package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Login fails", "login-fails"},
		{"Login Fails On Safari", "login-fails-on-safari"},
		{"already-hyphenated", "already-hyphenated"},
		{"UPPER CASE TITLE", "upper-case-title"},
		{"multiple   internal    spaces", "multiple-internal-spaces"},
		{"tabs\tand\nnewlines", "tabs-and-newlines"},
		{"single", "single"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Slugify(tt.title), "title %q", tt.title)
	}
}

func TestBugStatusValid(t *testing.T) {
	assert.True(t, StatusOpen.Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.True(t, StatusResolved.Valid())
	assert.False(t, BugStatus("closed").Valid())
	assert.False(t, BugStatus("").Valid())
	assert.False(t, BugStatus("Open").Valid())
}

func TestBugPriorityValid(t *testing.T) {
	assert.True(t, PriorityLow.Valid())
	assert.True(t, PriorityMedium.Valid())
	assert.True(t, PriorityHigh.Valid())
	assert.False(t, BugPriority("urgent").Valid())
	assert.False(t, BugPriority("").Valid())
}
