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

// WinnerHandler handles winner-related HTTP requests
type WinnerHandler struct {
	winnerService *services.WinnerService
}

// NewWinnerHandler creates a new WinnerHandler
func NewWinnerHandler(winnerService *services.WinnerService) *WinnerHandler {
	return &WinnerHandler{
		winnerService: winnerService,
	}
}

// Declare handles POST /winners (creator)
func (h *WinnerHandler) Declare(c *gin.Context) {
	var winner models.Winner
	if err := c.ShouldBindJSON(&winner); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requester := middleware.EmailFromContext(c)
	if err := h.winnerService.Declare(c.Request.Context(), &winner, requester); err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"error": "Contest not found"})
		case errors.Is(err, services.ErrNotContestOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrDuplicateWinner):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to declare winner"})
		}
		return
	}

	c.JSON(http.StatusCreated, winner)
}

// GetByContest handles GET /winners/contest/:id
func (h *WinnerHandler) GetByContest(c *gin.Context) {
	contestID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	winner, err := h.winnerService.GetByContest(c.Request.Context(), contestID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No winner declared for this contest"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get winner"})
		return
	}

	c.JSON(http.StatusOK, winner)
}

// GetRecent handles GET /winners/recent
func (h *WinnerHandler) GetRecent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))

	winners, err := h.winnerService.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get winners"})
		return
	}

	c.JSON(http.StatusOK, winners)
}
