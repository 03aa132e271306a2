package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"linkup/internal/adapter/api"
	"linkup/internal/adapter/api/handler"
	apimiddleware "linkup/internal/adapter/api/middleware"
	"linkup/internal/adapter/api/router"
	"linkup/internal/adapter/repository"
	"linkup/internal/usecase"
	"linkup/pkg/config"
	"linkup/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.Environment)
	defer logger.Sync()

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	userRepo := repository.NewPostgresUserRepository(pool)
	areaRepo := repository.NewPostgresAreaRepository(pool)
	communityRepo := repository.NewPostgresCommunityRepository(pool)
	reviewRepo := repository.NewPostgresReviewRepository(pool)
	mentoringRepo := repository.NewPostgresMentoringRepository(pool)
	matchingRepo := repository.NewPostgresMatchingRepository(pool)

	strictResolution, _ := strconv.ParseBool(os.Getenv("STRICT_NICKNAME_RESOLUTION"))

	profileUseCase := usecase.NewProfileUseCase(userRepo, areaRepo)
	activityUseCase := usecase.NewActivityUseCase(userRepo, communityRepo, strictResolution)
	mentorUseCase := usecase.NewMentorUseCase(userRepo, communityRepo, reviewRepo, mentoringRepo, matchingRepo)

	handler.Setup(profileUseCase, activityUseCase, mentorUseCase)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(cfg.JWTSecret)

	router.Setup(e, authMiddleware)

	logger.Info("Starting server on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
