// Package settings provides database operations for application settings.
//
// # Usage
//
//	repo := settings.NewRepository(db)
//	setting, err := repo.GetSetting(entities.SettingKeyExportDir)
package settings

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/apperr"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// Repository handles all settings database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new settings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetSetting retrieves a setting by key.
func (r *Repository) GetSetting(key string) (*entities.Setting, error) {
	var setting entities.Setting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: setting %q", apperr.ErrNotFound, key)
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// GetValue returns the stored value for key, or fallback when unset.
func (r *Repository) GetValue(key, fallback string) (string, error) {
	var setting entities.Setting
	result := r.db.Where("key = ?", key).Limit(1).Find(&setting)
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected == 0 || setting.Value == "" {
		return fallback, nil
	}
	return setting.Value, nil
}

// SetSetting creates or updates a setting.
func (r *Repository) SetSetting(key, value string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var setting entities.Setting
		result := tx.Where("key = ?", key).First(&setting)

		if result.Error == gorm.ErrRecordNotFound {
			setting = entities.Setting{
				Key:   key,
				Value: value,
			}
			return tx.Create(&setting).Error
		} else if result.Error != nil {
			return result.Error
		}

		setting.Value = value
		return tx.Save(&setting).Error
	})
}

// DeleteSetting removes a setting by key.
func (r *Repository) DeleteSetting(key string) error {
	return r.db.Where("key = ?", key).Delete(&entities.Setting{}).Error
}
