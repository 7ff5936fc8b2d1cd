// cmd/setupadmin/main.go
//
// Provisions (or re-provisions) an admin account. Credentials come
// from flags so nothing usable ships as a default.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/velizon/tracking-api/pkg/auth"
)

func main() {
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password (required)")
	name := flag.String("name", "", "admin display name (required)")
	owner := flag.Bool("owner", false, "grant the owner flag")
	flag.Parse()

	if *email == "" || *password == "" || *name == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getenv("DB_HOST", "localhost"), getenv("DB_PORT", "5432"),
		getenv("DB_USER", "postgres"), os.Getenv("DB_PASSWORD"),
		getenv("DB_NAME", "tracking_db"))

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping DB: %v", err)
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	_, err = db.Exec(`
		INSERT INTO admins (email, name, password, is_admin, is_owner)
		VALUES (LOWER($1), $2, $3, true, $4)
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name, password = EXCLUDED.password,
			is_admin = true, is_owner = EXCLUDED.is_owner`,
		*email, *name, hashed, *owner)
	if err != nil {
		log.Fatalf("failed to provision admin: %v", err)
	}

	log.Printf("admin %s provisioned", *email)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
