package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"farm-market.backend/internal/config"
	"farm-market.backend/internal/domain/entities"
	domainerrors "farm-market.backend/internal/domain/errors"
	"farm-market.backend/internal/infrastructure/repositories"
	"farm-market.backend/pkg/crypto"
)

// Seeds the first admin account. Admins cannot self-register, so a
// fresh deployment needs this once before anyone can review queues.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}
	if name == "" {
		name = "Administrator"
	}

	cfg := config.Load()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.Database.URL(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)
	ctx := context.Background()

	if existing, err := userRepo.GetByEmail(ctx, email); err == nil {
		fmt.Printf("Admin %s already exists (id %s)\n", existing.Email, existing.ID)
		return
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		log.Fatalf("failed to check for existing admin: %v", err)
	}

	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := &entities.User{
		ID:             uuid.New(),
		Email:          email,
		Name:           name,
		PasswordHash:   passwordHash,
		Role:           entities.RoleAdmin,
		ApprovalStatus: entities.ApprovalApproved,
		AccountStatus:  entities.AccountActive,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	fmt.Printf("Admin %s created (id %s)\n", admin.Email, admin.ID)
}
