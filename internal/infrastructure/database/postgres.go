package database

import (
	"fmt"
	"log"

	"github.com/pastesytony/pos-api/internal/config"
	"github.com/pastesytony/pos-api/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Store entities
		&entity.Branch{},
		&entity.Employee{},

		// Catalog entities
		&entity.Product{},

		// Transaction entities
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Sale{},
		&entity.SaleItem{},

		// System entities
		&entity.RegisterCounter{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with the default branches,
// employees and catalog. Safe to run on every startup: collections
// that already have rows are left untouched.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var branchCount int64
	if err := db.Model(&entity.Branch{}).Count(&branchCount).Error; err != nil {
		return fmt.Errorf("failed to count branches: %w", err)
	}

	var mainBranch entity.Branch
	if branchCount == 0 {
		branches := DefaultBranches()
		for i := range branches {
			if err := db.Create(&branches[i]).Error; err != nil {
				return fmt.Errorf("failed to create branch %s: %w", branches[i].Name, err)
			}
			log.Printf("Branch created: %s", branches[i].Name)
		}
		mainBranch = branches[0]
	} else {
		if err := db.Order("created_at").First(&mainBranch).Error; err != nil {
			return fmt.Errorf("failed to load main branch: %w", err)
		}
	}

	var employeeCount int64
	if err := db.Model(&entity.Employee{}).Count(&employeeCount).Error; err != nil {
		return fmt.Errorf("failed to count employees: %w", err)
	}

	if employeeCount == 0 {
		for _, seed := range DefaultEmployees() {
			hash, err := bcrypt.GenerateFromPassword([]byte(seed.PIN), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash PIN for %s: %w", seed.Name, err)
			}
			employee := entity.Employee{
				Name:     seed.Name,
				PINHash:  string(hash),
				Role:     seed.Role,
				BranchID: mainBranch.ID,
				IsActive: true,
			}
			if err := db.Create(&employee).Error; err != nil {
				return fmt.Errorf("failed to create employee %s: %w", seed.Name, err)
			}
			log.Printf("Employee created: %s", seed.Name)
		}
	}

	var productCount int64
	if err := db.Model(&entity.Product{}).Count(&productCount).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}

	if productCount == 0 {
		products := DefaultProducts()
		if err := db.Create(&products).Error; err != nil {
			return fmt.Errorf("failed to create catalog: %w", err)
		}
		log.Printf("%d products created", len(products))
	}

	log.Println("Default data seeding completed")
	return nil
}
