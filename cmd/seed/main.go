// Seeds reference data and a demo account for local development.
package main

import (
	"context"
	"log"
	"time"

	"hustlehub/pkg/database"
	"hustlehub/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var categories = []string{"Fashion", "Electronics", "Education", "Beauty", "Health"}

var services = []struct {
	Name        string
	Description string
	Price       float64
}{
	{"Men's Haircut", "Barbering service", 15.0},
	{"Laptop Repair", "Fix any laptop issues", 50.0},
	{"Tutoring", "One-on-one sessions", 25.0},
}

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, name := range categories {
		_, err := db.Exec(ctx,
			`INSERT INTO categories (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			uuid.New(), name)
		if err != nil {
			log.Fatalf("Failed to seed category %s: %v", name, err)
		}
	}

	for _, s := range services {
		var exists bool
		err := db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM services WHERE name = $1)`, s.Name).Scan(&exists)
		if err != nil {
			log.Fatalf("Failed to check service %s: %v", s.Name, err)
		}
		if exists {
			continue
		}

		_, err = db.Exec(ctx,
			`INSERT INTO services (id, name, description, price, created_at) VALUES ($1, $2, $3, $4, NOW())`,
			uuid.New(), s.Name, s.Description, s.Price)
		if err != nil {
			log.Fatalf("Failed to seed service %s: %v", s.Name, err)
		}
	}

	// Demo user with a loyalty card
	if err := seedDemoUser(ctx, db); err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}

	log.Println("Seeding complete.")
}

func seedDemoUser(ctx context.Context, db database.PgxIface) error {
	const email = "test@example.com"

	var userID uuid.UUID
	err := db.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&userID)
	if err == nil {
		return nil
	}
	if err != pgx.ErrNoRows {
		return err
	}

	hash, err := utils.HashPassword("password123")
	if err != nil {
		return err
	}

	userID = uuid.New()
	_, err = db.Exec(ctx,
		`INSERT INTO users (id, email, first_name, last_name, password_hash, is_provider, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, FALSE, NOW(), NOW())`,
		userID, email, "Test", "User", hash)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx,
		`INSERT INTO loyalty_cards (id, user_id, points, tier, created_at) VALUES ($1, $2, $3, $4, NOW())`,
		uuid.New(), userID, 100, "Silver")
	return err
}
