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

// CreatorRequestHandler handles creator-request HTTP requests
type CreatorRequestHandler struct {
	requestService *services.CreatorRequestService
}

// NewCreatorRequestHandler creates a new CreatorRequestHandler
func NewCreatorRequestHandler(requestService *services.CreatorRequestService) *CreatorRequestHandler {
	return &CreatorRequestHandler{
		requestService: requestService,
	}
}

// Submit handles POST /creator-requests
func (h *CreatorRequestHandler) Submit(c *gin.Context) {
	var request models.CreatorRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	request.Email = middleware.EmailFromContext(c)

	if err := h.requestService.Submit(c.Request.Context(), &request); err != nil {
		if errors.Is(err, services.ErrDuplicateCreatorRequest) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save request"})
		return
	}

	c.JSON(http.StatusCreated, request)
}

// List handles GET /creator-requests (admin)
func (h *CreatorRequestHandler) List(c *gin.Context) {
	requests, err := h.requestService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// Approve handles POST /creator-requests/:id/approve (admin)
func (h *CreatorRequestHandler) Approve(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	request, err := h.requestService.Approve(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request approved", "email": request.Email})
}
