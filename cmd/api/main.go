package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotleads/internal/database"
	"hotleads/internal/middleware"
	"hotleads/internal/modules/analytics"
	"hotleads/internal/modules/auth"
	"hotleads/internal/modules/goal"
	"hotleads/internal/modules/lead"
	"hotleads/internal/modules/settings"
	"hotleads/internal/modules/stream"
	jwtsvc "hotleads/internal/pkg/jwt"
	"hotleads/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotleads.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	resetPepper := os.Getenv("RESET_TOKEN_PEPPER")
	if resetPepper == "" {
		log.Fatal("RESET_TOKEN_PEPPER is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	resetRepo := repository.NewResetTokenRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)
	hub := stream.NewHub()

	authService := auth.NewService(userRepo, resetRepo, j, auth.LogMailer{}, resetPepper, time.Hour)
	authHandler := auth.NewHandler(authService)

	leadService := lead.NewService(leadRepo, settingsRepo, hub)
	leadHandler := lead.NewHandler(leadService)

	settingsService := settings.NewService(settingsRepo, hub)
	settingsHandler := settings.NewHandler(settingsService)

	goalService := goal.NewService(goalRepo, leadRepo, hub)
	goalHandler := goal.NewHandler(goalService)

	analyticsHandler := analytics.NewHandler(leadRepo, settingsRepo)
	streamHandler := stream.NewHandler(hub, leadRepo, goalRepo, settingsRepo)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			leadHandler.RegisterRoutes(protected)
			settingsHandler.RegisterRoutes(protected)
			goalHandler.RegisterRoutes(protected)
			analyticsHandler.RegisterRoutes(protected)
			streamHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
