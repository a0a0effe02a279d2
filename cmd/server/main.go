package main

import (
	"log"
	"net/http"
	"os"

	_ "carvault/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"carvault/internal/auth"
	"carvault/internal/cache"
	"carvault/internal/config"
	"carvault/internal/db"
	"carvault/internal/handler"
	"carvault/internal/model"
	"carvault/internal/repository"
	"carvault/internal/router"
	"carvault/internal/service"
)

// @title Car Vault API
// @version 1.0
// @description Authenticated car registry with cookie-based JWT sessions.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		for _, table := range []interface{}{&model.Car{}, &model.User{}} {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(&model.User{}, &model.Car{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	carRepo := repository.NewCarRepository(gormDB)

	// Initialize auth components
	tokenService := auth.NewTokenService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenService)
	carService := service.NewCarService(carRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, tokenService)
	carHandler := handler.NewCarHandler(carService)

	// Register routes
	router.Register(e, cfg, authHandler, carHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
