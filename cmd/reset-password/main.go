package main

import (
	"flag"
	"log"

	"github.com/Maspur102/elokalfa/internal/config"
	"github.com/Maspur102/elokalfa/internal/repository"
	"github.com/Maspur102/elokalfa/pkg/database"

	"github.com/google/uuid"
)

func main() {
	// 1. Load Config
	cfg := config.Load()
	username := flag.String("username", cfg.Admin.Username, "account to reset")
	newPassword := flag.String("password", cfg.Admin.Password, "new password")
	flag.Parse()

	if len(*newPassword) < 6 {
		log.Fatal("New password must be at least 6 characters")
	}

	// 2. Setup Database
	db := database.ConnectDB(cfg.Database.DSN(), cfg.Database.LogLevel)
	userRepo := repository.NewUserRepo(db)

	// 3. Find user
	user, err := userRepo.FindByUsername(*username)
	if err != nil {
		log.Fatalf("User %s not found in database: %v", *username, err)
	}

	// 4. Hash new password
	if err := user.SetPassword(*newPassword); err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	// 5. Update and end existing sessions
	if err := userRepo.UpdatePassword(user.ID, user.Password); err != nil {
		log.Fatalf("Failed to update password in DB: %v", err)
	}
	if err := userRepo.UpdateTokenVersion(user.ID, uuid.New().String()); err != nil {
		log.Fatalf("Failed to reset sessions: %v", err)
	}

	log.Printf("Success! Password for %s has been reset. Existing sessions were signed out.", *username)
}
