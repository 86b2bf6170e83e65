package routes

import (
	"github.com/battlebox/contest-backend/internal/config"
	"github.com/battlebox/contest-backend/internal/handlers"
	"github.com/battlebox/contest-backend/internal/middleware"
	"github.com/battlebox/contest-backend/internal/repositories"
	"github.com/battlebox/contest-backend/pkg/token"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies groups the handlers wired in main
type HandlerDependencies struct {
	AuthHandler           *handlers.AuthHandler
	UserHandler           *handlers.UserHandler
	ContestHandler        *handlers.ContestHandler
	PaymentHandler        *handlers.PaymentHandler
	SubmissionHandler     *handlers.SubmissionHandler
	WinnerHandler         *handlers.WinnerHandler
	CreatorRequestHandler *handlers.CreatorRequestHandler
	ReviewHandler         *handlers.ReviewHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, tokens *token.Service, userRepo repositories.UserRepository, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.ResponseTimeMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		public.POST("/auth/login", deps.AuthHandler.Login)

		public.GET("/contests", deps.ContestHandler.GetApproved)
		public.GET("/contests/popular", deps.ContestHandler.GetPopular)
		public.GET("/contests/:id", deps.ContestHandler.GetByID)

		public.GET("/reviews", deps.ReviewHandler.GetRecent)
		public.GET("/winners/recent", deps.WinnerHandler.GetRecent)
	}

	// Protected routes: any verified principal
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(tokens))
	{
		protected.POST("/users", deps.UserHandler.Upsert)
		protected.GET("/users/role", deps.UserHandler.GetRole)

		protected.POST("/payments/checkout", deps.PaymentHandler.CreateCheckout)
		protected.POST("/payments/settle", deps.PaymentHandler.Settle)
		protected.GET("/orders", deps.PaymentHandler.GetOrders)

		protected.POST("/submissions", deps.SubmissionHandler.Submit)
		protected.GET("/submissions/mine", deps.SubmissionHandler.ListMine)
		protected.GET("/submissions/contest/:id", deps.SubmissionHandler.ListByContest)

		protected.POST("/creator-requests", deps.CreatorRequestHandler.Submit)
		protected.POST("/reviews", deps.ReviewHandler.Create)

		protected.GET("/winners/contest/:id", deps.WinnerHandler.GetByContest)
	}

	// Creator routes
	creator := router.Group("/api/v1")
	creator.Use(middleware.JWTAuthMiddleware(tokens))
	creator.Use(middleware.RequireCreator(userRepo))
	{
		creator.POST("/contests", deps.ContestHandler.Create)
		creator.GET("/contests/mine", deps.ContestHandler.GetMine)
		creator.PUT("/contests/:id", deps.ContestHandler.Update)
		creator.DELETE("/contests/:id", deps.ContestHandler.Delete(false))

		creator.POST("/winners", deps.WinnerHandler.Declare)
	}

	// Admin routes
	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.JWTAuthMiddleware(tokens))
	admin.Use(middleware.RequireAdmin(userRepo))
	{
		admin.GET("/users", deps.UserHandler.GetAll)
		admin.PATCH("/users/:id/role", deps.UserHandler.UpdateRole)

		admin.GET("/contests", deps.ContestHandler.GetAll)
		admin.PATCH("/contests/:id/status", deps.ContestHandler.UpdateStatus)
		admin.DELETE("/contests/:id", deps.ContestHandler.Delete(true))

		admin.GET("/creator-requests", deps.CreatorRequestHandler.List)
		admin.POST("/creator-requests/:id/approve", deps.CreatorRequestHandler.Approve)
	}

	return router
}
