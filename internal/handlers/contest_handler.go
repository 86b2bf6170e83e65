package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/battlebox/contest-backend/internal/middleware"
	"github.com/battlebox/contest-backend/internal/models"
	"github.com/battlebox/contest-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ContestHandler handles contest-related HTTP requests
type ContestHandler struct {
	contestService *services.ContestService
	userService    *services.UserService
}

// NewContestHandler creates a new ContestHandler
func NewContestHandler(contestService *services.ContestService, userService *services.UserService) *ContestHandler {
	return &ContestHandler{
		contestService: contestService,
		userService:    userService,
	}
}

// GetApproved handles GET /contests
func (h *ContestHandler) GetApproved(c *gin.Context) {
	category := c.Query("category")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	contests, err := h.contestService.GetApproved(c.Request.Context(), category, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get contests"})
		return
	}

	c.JSON(http.StatusOK, contests)
}

// GetPopular handles GET /contests/popular
func (h *ContestHandler) GetPopular(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))

	contests, err := h.contestService.GetPopular(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get contests"})
		return
	}

	c.JSON(http.StatusOK, contests)
}

// GetByID handles GET /contests/:id
func (h *ContestHandler) GetByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	contest, err := h.contestService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get contest"})
		return
	}

	c.JSON(http.StatusOK, contest)
}

// Create handles POST /contests (creator)
func (h *ContestHandler) Create(c *gin.Context) {
	var contest models.Contest
	if err := c.ShouldBindJSON(&contest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := middleware.EmailFromContext(c)
	creator, err := h.userService.GetByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve creator"})
		return
	}
	contest.Creator = models.ContestCreator{
		Name:  creator.Name,
		Email: creator.Email,
		Image: creator.Image,
	}

	if err := h.contestService.Create(c.Request.Context(), &contest); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contest"})
		return
	}

	c.JSON(http.StatusCreated, contest)
}

// GetMine handles GET /contests/mine (creator)
func (h *ContestHandler) GetMine(c *gin.Context) {
	email := middleware.EmailFromContext(c)

	contests, err := h.contestService.GetByCreator(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get contests"})
		return
	}

	c.JSON(http.StatusOK, contests)
}

// GetAll handles GET /contests/all (admin)
func (h *ContestHandler) GetAll(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	contests, err := h.contestService.GetAll(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get contests"})
		return
	}

	c.JSON(http.StatusOK, contests)
}

// Update handles PUT /contests/:id (creator, owner only, pending only)
func (h *ContestHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var updated models.Contest
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := middleware.EmailFromContext(c)
	contest, err := h.contestService.Update(c.Request.Context(), id, email, &updated)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"error": "Contest not found"})
		case errors.Is(err, services.ErrNotContestOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrContestNotEditable):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contest"})
		}
		return
	}

	c.JSON(http.StatusOK, contest)
}

// UpdateStatus handles PATCH /contests/:id/status (admin)
func (h *ContestHandler) UpdateStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required,oneof=pending approved rejected"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.contestService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
}

// Delete handles DELETE /contests/:id. Reused by both the creator group
// (owner only) and the admin group (any contest); the guard that admitted
// the request decides which rule applies.
func (h *ContestHandler) Delete(isAdmin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
			return
		}

		email := middleware.EmailFromContext(c)
		if err := h.contestService.Delete(c.Request.Context(), id, email, isAdmin); err != nil {
			switch {
			case errors.Is(err, mongo.ErrNoDocuments):
				c.JSON(http.StatusNotFound, gin.H{"error": "Contest not found"})
			case errors.Is(err, services.ErrNotContestOwner):
				c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contest"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Contest deleted successfully"})
	}
}
