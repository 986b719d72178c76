package database

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/aminbn12/planiunv/config"
	"github.com/aminbn12/planiunv/internal/model"
)

// EnsureAdmin creates the bootstrap admin account if it does not exist.
// Without it a fresh database has no account able to log in.
func EnsureAdmin(db *gorm.DB, cfg *config.BootstrapConfig, logger *zap.Logger) error {
	var existing model.User
	err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check admin account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := model.User{
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}

	logger.Info("bootstrap admin created", zap.String("email", cfg.AdminEmail))
	return nil
}
