package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/battlebox/contest-backend/api/routes"
	"github.com/battlebox/contest-backend/internal/config"
	"github.com/battlebox/contest-backend/internal/handlers"
	"github.com/battlebox/contest-backend/internal/services"
	"github.com/battlebox/contest-backend/pkg/checkout"
	"github.com/battlebox/contest-backend/pkg/token"
	"github.com/joho/godotenv"

	mongorepo "github.com/battlebox/contest-backend/internal/repositories/mongodb"
	"github.com/battlebox/contest-backend/pkg/mongodb"
)

func main() {
	// .env is optional; deployed environments set real variables
	if err := godotenv.Load(); err != nil {
		log.Println("[DEBUG] No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("[FATAL] JWT_SECRET is not configured")
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	userRepo := mongorepo.NewUserRepository(db)
	contestRepo := mongorepo.NewContestRepository(db)
	orderRepo := mongorepo.NewOrderRepository(db)
	submissionRepo := mongorepo.NewSubmissionRepository(db)
	winnerRepo := mongorepo.NewWinnerRepository(db)
	creatorRequestRepo := mongorepo.NewCreatorRequestRepository(db)
	reviewRepo := mongorepo.NewReviewRepository(db)

	// External collaborators
	tokens := token.NewService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiresIn)*time.Second)
	provider := checkout.NewClient(cfg.Checkout.BaseURL, cfg.Checkout.APIKey, cfg.Checkout.Mock)

	// Services
	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo)
	contestService := services.NewContestService(contestRepo)
	paymentService := services.NewPaymentService(orderRepo, contestRepo, userRepo, provider, cfg.Checkout.SuccessURL, cfg.Checkout.CancelURL)
	submissionService := services.NewSubmissionService(submissionRepo, contestRepo)
	winnerService := services.NewWinnerService(winnerRepo, contestRepo, userRepo)
	creatorRequestService := services.NewCreatorRequestService(creatorRequestRepo, userRepo)
	reviewService := services.NewReviewService(reviewRepo)

	// Handlers
	deps := routes.HandlerDependencies{
		AuthHandler:           handlers.NewAuthHandler(authService),
		UserHandler:           handlers.NewUserHandler(userService),
		ContestHandler:        handlers.NewContestHandler(contestService, userService),
		PaymentHandler:        handlers.NewPaymentHandler(paymentService),
		SubmissionHandler:     handlers.NewSubmissionHandler(submissionService),
		WinnerHandler:         handlers.NewWinnerHandler(winnerService),
		CreatorRequestHandler: handlers.NewCreatorRequestHandler(creatorRequestService),
		ReviewHandler:         handlers.NewReviewHandler(reviewService),
	}

	router := routes.SetupRouter(cfg, tokens, userRepo, deps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
