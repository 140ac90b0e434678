package migrations

import (
	"errors"

	"cafe_manager/internal/logger"
	"cafe_manager/internal/models"
	"cafe_manager/internal/repository"
	"cafe_manager/internal/services"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RunMigrations creates the schema and seeds the sentinel admin account.
func RunMigrations(db *gorm.DB, adminPassword string) error {
	logger.L().Info("running database migrations")

	err := db.AutoMigrate(
		&models.Employee{},
		&models.Order{},
		&models.History{},
	)
	if err != nil {
		return err
	}

	if err := seedAdmin(db, adminPassword); err != nil {
		logger.L().Warn("failed to seed admin account", zap.Error(err))
	}

	logger.L().Info("database migrations completed")
	return nil
}

// seedAdmin creates the approved admin account on first run. The account is
// protected from deletion by its role, not its name.
func seedAdmin(db *gorm.DB, adminPassword string) error {
	employeeRepo := repository.NewEmployeeRepository(db)

	_, err := employeeRepo.GetByUsername("admin")
	if err == nil {
		logger.L().Info("admin account already exists")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := services.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	admin := &models.Employee{
		Username:     "admin",
		PasswordHash: hash,
		Role:         string(models.RoleAdmin),
		IsApproved:   true,
	}
	if err := employeeRepo.Create(admin); err != nil {
		return err
	}

	logger.L().Info("admin account created", zap.String("username", admin.Username))
	return nil
}
