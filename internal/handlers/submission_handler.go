package handlers

import (
	"errors"
	"net/http"

	"github.com/battlebox/contest-backend/internal/middleware"
	"github.com/battlebox/contest-backend/internal/models"
	"github.com/battlebox/contest-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SubmissionHandler handles submission-related HTTP requests
type SubmissionHandler struct {
	submissionService *services.SubmissionService
}

// NewSubmissionHandler creates a new SubmissionHandler
func NewSubmissionHandler(submissionService *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
	}
}

// Submit handles POST /submissions
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var submission models.Submission
	if err := c.ShouldBindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	submission.Email = middleware.EmailFromContext(c)

	if err := h.submissionService.Submit(c.Request.Context(), &submission); err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"error": "Contest not found"})
		case errors.Is(err, services.ErrDuplicateSubmission):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save submission"})
		}
		return
	}

	c.JSON(http.StatusCreated, submission)
}

// ListByContest handles GET /submissions/contest/:id
func (h *SubmissionHandler) ListByContest(c *gin.Context) {
	contestID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	submissions, err := h.submissionService.ListByContest(c.Request.Context(), contestID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get submissions"})
		return
	}

	c.JSON(http.StatusOK, submissions)
}

// ListMine handles GET /submissions/mine
func (h *SubmissionHandler) ListMine(c *gin.Context) {
	email := middleware.EmailFromContext(c)

	submissions, err := h.submissionService.ListByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get submissions"})
		return
	}

	c.JSON(http.StatusOK, submissions)
}
