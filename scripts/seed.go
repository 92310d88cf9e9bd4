//go:build ignore

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/emanueletoscanosoftware/fridly/internal/auth"
	"github.com/emanueletoscanosoftware/fridly/internal/database"
	"github.com/emanueletoscanosoftware/fridly/internal/database/models"
	"github.com/emanueletoscanosoftware/fridly/internal/household"
	"github.com/emanueletoscanosoftware/fridly/pkg/config"
	"github.com/emanueletoscanosoftware/fridly/pkg/util"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := util.NewLogger(cfg.Server.Env)

	db, err := database.Connect(&cfg.Database, logger)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry())
	authService := auth.NewService(db, jwtService)
	households := household.NewService(db)

	email := os.Getenv("SEED_EMAIL")
	password := os.Getenv("SEED_PASSWORD")
	if email == "" {
		email = "demo@fridly.test"
	}
	if password == "" {
		password = "demo1234"
	}

	ctx := context.Background()

	user, err := authService.Register(ctx, auth.RegisterInput{
		Email:    email,
		Password: password,
	})
	if err != nil {
		if err == auth.ErrEmailTaken {
			fmt.Printf("Demo user already exists: %s\n", email)
			return
		}
		log.Fatalf("failed to create demo user: %v", err)
	}

	hh, err := households.Create(ctx, user.ID, "Casa Demo")
	if err != nil {
		log.Fatalf("failed to create demo household: %v", err)
	}

	// Starter catalog and pantry content
	ean := "8076800105735"
	pasta := models.Product{Name: "Pasta 500g", Brand: "Barilla", Category: "dispensa", EAN: &ean}
	if err := db.Create(&pasta).Error; err != nil {
		log.Fatalf("failed to create product: %v", err)
	}
	milk := models.Product{Name: "Latte 1L", Category: "frigo"}
	if err := db.Create(&milk).Error; err != nil {
		log.Fatalf("failed to create product: %v", err)
	}

	expiry := time.Now().AddDate(0, 0, 7)
	items := []models.InventoryItem{
		{HouseholdID: hh.ID, ProductID: pasta.ID, Quantity: 2, Unit: "pz", Location: "pantry"},
		{HouseholdID: hh.ID, ProductID: milk.ID, Quantity: 1, Unit: "pz", Location: "fridge", ExpiresAt: &expiry},
	}
	if err := db.Create(&items).Error; err != nil {
		log.Fatalf("failed to create inventory items: %v", err)
	}

	fmt.Printf("Seed ok.\n")
	fmt.Printf("User: %s\n", user.Email)
	fmt.Printf("Household: %s (%s)\n", hh.Name, hh.ID)
}
