package main

import (
	"fmt"
	"log"

	"cafe_manager/internal/config"
	"cafe_manager/internal/database"
	"cafe_manager/internal/migrations"
	"cafe_manager/internal/models"
)

// Standalone tool: drop and recreate the schema, then reseed the admin
// account. Destroys all data, intended for development only.
func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.Employee{},
		&models.Order{},
		&models.History{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema and seed the admin account
	fmt.Println("Creating tables...")
	if err := migrations.RunMigrations(db, cfg.AdminPassword); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	fmt.Println("Database initialized successfully!")
	fmt.Println("Username: admin")
	fmt.Println("Password:", cfg.AdminPassword)
}
