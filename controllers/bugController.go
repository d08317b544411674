package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"bugtracker-be/apperrors"
	"bugtracker-be/models"
	"bugtracker-be/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BugController implements the bug resource operations: validation,
// ownership checks, and orchestration of the injected store.
type BugController struct {
	Store store.BugStore
}

func NewBugController(s store.BugStore) *BugController {
	return &BugController{Store: s}
}

// callerID returns the authenticated subject set by AuthMiddleware.
func callerID(c *gin.Context) (primitive.ObjectID, error) {
	userID, exists := c.Get("user_id")
	if !exists {
		return primitive.NilObjectID, apperrors.NewUnauthorized("User not authenticated")
	}
	objectID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		return primitive.NilObjectID, apperrors.NewUnauthorized("Invalid token subject")
	}
	return objectID, nil
}

// GetBugs handles retrieving all bugs with optional filters and pagination
func (bc *BugController) GetBugs(c *gin.Context) {
	category := c.Query("category")
	priority := c.Query("priority")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	filter := store.BugFilter{Category: category, Priority: priority}

	bugs, err := bc.Store.Query(c.Request.Context(), filter, page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	// An empty result is a normal response, never a 404.
	c.JSON(http.StatusOK, bugs)
}

// GetBug retrieves a single bug by its ID
func (bc *BugController) GetBug(c *gin.Context) {
	bug, err := bc.Store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, bug)
}

// CreateBug handles reporting a new bug
func (bc *BugController) CreateBug(c *gin.Context) {
	authorID, err := callerID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var input struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Priority    string  `json:"priority"`
		Category    string  `json:"category"`
		Status      *string `json:"status"`
		AssignedTo  string  `json:"assignedTo"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperrors.NewValidation("Invalid request body"))
		return
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" || input.Description == "" || input.Priority == "" {
		c.Error(apperrors.NewValidation("Title, description and priority are required"))
		return
	}

	priority := models.BugPriority(input.Priority)
	if !priority.Valid() {
		c.Error(apperrors.NewValidation("Invalid priority"))
		return
	}

	// Set default status if not provided
	status := models.StatusOpen
	if input.Status != nil {
		status = models.BugStatus(*input.Status)
		if !status.Valid() {
			c.Error(apperrors.NewValidation("Invalid status"))
			return
		}
	}

	assignedTo := input.AssignedTo
	if assignedTo == "" {
		assignedTo = models.DefaultAssignee
	}

	bug := models.Bug{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		Category:    input.Category,
		Slug:        models.Slugify(input.Title),
		AuthorID:    &authorID,
		AssignedTo:  assignedTo,
	}

	created, err := bc.Store.Insert(c.Request.Context(), bug)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateBug allows the author of a bug to update its details
func (bc *BugController) UpdateBug(c *gin.Context) {
	caller, err := callerID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var input struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Status      *string `json:"status"`
		Priority    *string `json:"priority"`
		Category    *string `json:"category"`
		AssignedTo  *string `json:"assignedTo"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperrors.NewValidation("Invalid request body"))
		return
	}

	existing, err := bc.Store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	// Ownership only applies when the record has an author; an
	// authorless bug may be changed by any authenticated caller.
	if existing.AuthorID != nil && *existing.AuthorID != caller {
		c.Error(apperrors.NewForbidden("You can only update your own bugs"))
		return
	}

	update := store.BugUpdate{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		AssignedTo:  input.AssignedTo,
	}
	if input.Status != nil {
		status := models.BugStatus(*input.Status)
		if !status.Valid() {
			c.Error(apperrors.NewValidation("Invalid status"))
			return
		}
		update.Status = &status
	}
	if input.Priority != nil {
		priority := models.BugPriority(*input.Priority)
		if !priority.Valid() {
			c.Error(apperrors.NewValidation("Invalid priority"))
			return
		}
		update.Priority = &priority
	}

	// Slug and author are not part of BugUpdate, so a payload carrying
	// them cannot overwrite either.
	updated, err := bc.Store.UpdateByID(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteBug allows the author of a bug to delete it
func (bc *BugController) DeleteBug(c *gin.Context) {
	caller, err := callerID(c)
	if err != nil {
		c.Error(err)
		return
	}

	existing, err := bc.Store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	// Same ownership policy as UpdateBug.
	if existing.AuthorID != nil && *existing.AuthorID != caller {
		c.Error(apperrors.NewForbidden("You can only delete your own bugs"))
		return
	}

	if err := bc.Store.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bug deleted successfully"})
}
