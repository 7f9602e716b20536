package database

import (
	"fmt"
	"log"

	"github.com/g2rism/backoffice-api/internal/config"
	"github.com/g2rism/backoffice-api/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/spf13/viper"
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
		// User-related entities
		&entity.User{},
		&entity.Role{},
		&entity.Permission{},
		&entity.PasswordResetToken{},

		// CRM entities
		&entity.Lead{},
		&entity.Interaction{},
		&entity.Note{},
		&entity.Task{},
		&entity.Document{},

		// HR entities
		&entity.Employee{},

		// Sales entities
		&entity.Sale{},
		&entity.SaleItem{},

		// System entities
		&entity.IdempotencyKey{},
		&entity.AgencySettings{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

var defaultPermissions = []string{
	"view-dashboard",
	"manage-leads",
	"manage-employees",
	"manage-sales",
	"manage-settings",
	"manage-users",
	"view-reports",
}

var defaultRoles = map[string][]string{
	"admin": defaultPermissions,
	"manager": {
		"view-dashboard",
		"manage-leads",
		"manage-employees",
		"manage-sales",
		"view-reports",
	},
	"advisor": {
		"view-dashboard",
		"manage-leads",
		"manage-sales",
	},
}

// SeedDefaultData seeds the database with default roles, permissions and the
// admin user when one is configured
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	for _, name := range defaultPermissions {
		var existing entity.Permission
		if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
			if err := db.Create(&entity.Permission{Name: name}).Error; err != nil {
				log.Printf("Warning: failed to create permission %s: %v", name, err)
			}
		}
	}

	// Reload permissions with IDs
	var allPermissions []entity.Permission
	db.Find(&allPermissions)

	byName := make(map[string]entity.Permission, len(allPermissions))
	for _, p := range allPermissions {
		byName[p.Name] = p
	}

	for roleName, permissionNames := range defaultRoles {
		var existing entity.Role
		if err := db.Where("name = ?", roleName).First(&existing).Error; err == nil {
			continue
		}

		perms := make([]entity.Permission, 0, len(permissionNames))
		for _, name := range permissionNames {
			if p, ok := byName[name]; ok {
				perms = append(perms, p)
			}
		}

		role := entity.Role{Name: roleName, Permissions: perms}
		if err := db.Create(&role).Error; err != nil {
			log.Printf("Warning: failed to create role %s: %v", roleName, err)
		}
	}

	// Create the admin user if configured via environment variables
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				var adminRole entity.Role
				if err := db.Where("name = ?", "admin").First(&adminRole).Error; err == nil {
					if adminName == "" {
						adminName = "Administrador"
					}
					firstName := adminName
					lastName := ""
					for i, c := range adminName {
						if c == ' ' {
							firstName = adminName[:i]
							lastName = adminName[i+1:]
							break
						}
					}
					adminUser := entity.User{
						ID:        uuid.New(),
						FirstName: firstName,
						LastName:  lastName,
						Email:     adminEmail,
						Password:  string(hashedPassword),
						Active:    true,
						Roles:     []entity.Role{adminRole},
					}
					if err := db.Create(&adminUser).Error; err != nil {
						log.Printf("Warning: failed to create admin user: %v", err)
					} else {
						log.Printf("Admin user created: %s", adminEmail)
					}
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
