package main

import (
	"log"
	"os"

	"contentcraft-be/internal/model"
	"contentcraft-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Starting GORM Migration...")

	// 3. Pre-Migration: Extensions (gen_random_uuid lives in pgcrypto)
	color.Cyan("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Yellow("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	color.Cyan("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.Content{},
		&model.SystemLog{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		color.Red("Error: AutoMigrate failed: %v", err)
		os.Exit(1)
	}

	color.Green("Migration completed successfully: %d tables are up to date", len(models))
}
