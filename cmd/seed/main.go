package main

import (
	"context"
	"errors"
	"log"
	"time"

	"carvault/internal/auth"
	"carvault/internal/config"
	apperrors "carvault/internal/errors"
	"carvault/internal/db"
	"carvault/internal/model"
	"carvault/internal/repository"
	"carvault/internal/service"
)

const (
	demoUsername = "demo"
	demoPassword = "demo1234"
)

// demoCars is the fixture set created for the demo user.
var demoCars = []struct {
	model        string
	purchaseDate string
}{
	{"Civic", "2020-01-01"},
	{"Golf", "2018-06-15"},
	{"Model 3", ""},
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Car{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	carRepo := repository.NewCarRepository(gormDB)
	authService := service.NewAuthService(userRepo, auth.NewTokenService(cfg.JWTSecret))

	ctx := context.Background()

	user, err := authService.Register(ctx, demoUsername, demoPassword)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicateUsername) {
			log.Fatalf("Failed to create demo user: %v", err)
		}
		log.Printf("Demo user %q already exists", demoUsername)
		user, err = userRepo.FindByUsername(ctx, demoUsername)
		if err != nil {
			log.Fatalf("Failed to load demo user: %v", err)
		}
	} else {
		log.Printf("Created demo user %q (id=%d)", user.Username, user.ID)
	}

	existing, err := carRepo.ListByOwner(ctx, user.ID)
	if err != nil {
		log.Fatalf("Failed to list demo cars: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Demo user already owns %d cars, nothing to do", len(existing))
		return
	}

	seeded := 0
	for _, dc := range demoCars {
		car := &model.Car{Model: dc.model, UserID: user.ID}
		if dc.purchaseDate != "" {
			t, err := time.Parse("2006-01-02", dc.purchaseDate)
			if err != nil {
				log.Printf("Skipping car %q with invalid date: %s", dc.model, dc.purchaseDate)
				continue
			}
			car.PurchaseDate = &t
		}
		if err := carRepo.Create(ctx, car); err != nil {
			log.Fatalf("Failed to seed car %q: %v", dc.model, err)
		}
		seeded++
	}

	log.Printf("Seed completed successfully! Cars created: %d", seeded)
}
