package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/todoloop/backend/auth"
	"github.com/todoloop/backend/config"
	"github.com/todoloop/backend/database"
	"github.com/todoloop/backend/logger"
	"github.com/todoloop/backend/models"
	"github.com/todoloop/backend/store"
	"go.uber.org/zap"
)

// Seeds the initial admin account if it does not exist yet.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	username := envOr("SEED_ADMIN_USERNAME", "admin")
	password := envOr("SEED_ADMIN_PASSWORD", "admin")
	email := envOr("SEED_ADMIN_EMAIL", "admin@localhost")

	users := store.NewUserStore(db)
	ctx := context.Background()

	if _, err := users.GetByUsername(ctx, username); err == nil {
		logger.Info("admin user already exists", zap.String("username", username))
		return
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		logger.Fatal("failed to hash password", zap.Error(err))
	}

	admin := models.User{
		Name:           "Administrator",
		Email:          email,
		Username:       username,
		HashedPassword: hashed,
		IsActive:       true,
		Role:           "admin",
	}

	if err := users.Create(ctx, &admin); err != nil {
		logger.Fatal("failed to create admin user", zap.Error(err))
	}

	logger.Info("admin user seeded", zap.String("username", username))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
