package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/auth"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/cache"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/config"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/database"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/db"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/handlers"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/health"
	h "github.com/Manjunath2731/navayugasystmebackend-new/internal/http"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/middleware"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/repositories"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/services"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/storage"
	"github.com/Manjunath2731/navayugasystmebackend-new/migrations"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	migrator := database.NewMigrator(pool, migrations.FS)
	if err := migrator.RunMigrations(ctx); err != nil {
		cancel()
		log.Fatalf("migrations failed: %v", err)
	}
	cancel()

	// Redis is optional; without it the analytics report is recomputed
	// on every request.
	if err := cache.Init(); err != nil {
		log.Printf("[Cache] Redis unavailable, running without analytics cache: %v", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	linkageRepo := repositories.NewLinkageRepository(pool)
	shgRepo := repositories.NewSHGRepository(pool)
	memberRepo := repositories.NewSHGMemberRepository(pool)
	repaymentRepo := repositories.NewMonthlyRepaymentRepository(pool)
	ticketRepo := repositories.NewDeleteTicketRepository(pool)

	// Services
	jwtManager := auth.NewJWTManager(cfg)
	userService := services.NewUserService(userRepo, jwtManager)
	linkageService := services.NewLinkageService(linkageRepo)
	shgService := services.NewSHGService(shgRepo)
	memberService := services.NewSHGMemberService(memberRepo, shgRepo)
	repaymentService := services.NewMonthlyRepaymentService(repaymentRepo, shgRepo)
	ticketService := services.NewDeleteTicketService(ticketRepo, shgRepo, memberRepo)
	analyticsService := services.NewAnalyticsService(shgRepo, repaymentRepo)
	receiptService := services.NewReceiptService(repaymentRepo, shgRepo)

	if err := userService.EnsureDefaultOwner(context.Background()); err != nil {
		log.Fatalf("owner bootstrap failed: %v", err)
	}

	// S3 is optional too; upload endpoints return 503 when unconfigured.
	s3Store, err := storage.NewS3Store(cfg)
	if err != nil {
		log.Printf("[Storage] S3 unavailable, file uploads disabled: %v", err)
		s3Store = nil
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	linkageHandler := handlers.NewLinkageHandler(linkageService)
	shgHandler := handlers.NewSHGHandler(shgService, receiptService)
	memberHandler := handlers.NewSHGMemberHandler(memberService)
	repaymentHandler := handlers.NewMonthlyRepaymentHandler(repaymentService, receiptService)
	ticketHandler := handlers.NewDeleteTicketHandler(ticketService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	fileHandler := handlers.NewFileHandler(s3Store)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	router := h.NewRouter(
		authHandler,
		userHandler,
		linkageHandler,
		shgHandler,
		memberHandler,
		repaymentHandler,
		ticketHandler,
		analyticsHandler,
		fileHandler,
		healthHandler,
		authMiddleware,
	)

	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
