package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/edulearn/ai-teacher-api/config"
	"github.com/edulearn/ai-teacher-api/pkg/helpers"
)

// Seeds an initial superuser account for local development and the admin
// user listing endpoint.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@example.com"
	password := "changeme123"
	name := "Admin"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, name, hashed_password, is_active, is_superuser)
		VALUES ($1, $2, $3, true, true)
		ON CONFLICT (email) DO UPDATE SET is_superuser = true, updated_at = now()
		RETURNING id
	`, email, name, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed superuser: %v", err)
	}
	fmt.Printf("seeded superuser: id=%s email=%s password=%s\n", id, email, password)
}
