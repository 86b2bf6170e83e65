package handlers

import (
	"errors"
	"net/http"

	"github.com/battlebox/contest-backend/internal/middleware"
	"github.com/battlebox/contest-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentHandler handles checkout and settlement HTTP requests
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreateCheckout handles POST /payments/checkout
func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	var req struct {
		ContestID string `json:"contestId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contestID, err := primitive.ObjectIDFromHex(req.ContestID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contest ID format"})
		return
	}

	email := middleware.EmailFromContext(c)
	url, err := h.paymentService.CreateCheckout(c.Request.Context(), contestID, email)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"error": "Contest not found"})
		case errors.Is(err, services.ErrProviderLookup):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Settle handles POST /payments/settle. Every outcome gets an explicit
// terminal response; a settle call never hangs without a body.
func (h *PaymentHandler) Settle(c *gin.Context) {
	var req struct {
		SessionID string `json:"sessionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.paymentService.Settle(c.Request.Context(), req.SessionID)
	if err != nil {
		if errors.Is(err, services.ErrProviderLookup) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider lookup failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Settlement failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetOrders handles GET /orders
func (h *PaymentHandler) GetOrders(c *gin.Context) {
	email := middleware.EmailFromContext(c)

	orders, err := h.paymentService.OrdersByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}
