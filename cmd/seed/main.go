package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/dilvertex/pipesite-backend/config"
	"github.com/dilvertex/pipesite-backend/pkg/helpers"
)

// Bootstraps the first admin account from ADMIN_USERNAME / ADMIN_PASSWORD.
// Safe to run repeatedly; an existing username is left untouched.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	hash, err := helpers.HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO admins (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO NOTHING
		RETURNING id
	`, cfg.AdminUsername, hash).Scan(&id)
	if err == sql.ErrNoRows {
		fmt.Printf("admin %q already exists, nothing to do\n", cfg.AdminUsername)
		return
	}
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s username=%s\n", id, cfg.AdminUsername)
}
