package models

import (
	"errors"

	"gorm.io/gorm"
)

const SettingMaintenanceMode = "maintenance_mode"

type SystemSetting struct {
	gorm.Model
	Key   string `json:"key" gorm:"uniqueIndex"`
	Value string `json:"value"`
}

// GetSetting returns the stored value for key, or fallback when no row
// exists.
func GetSetting(dbc *gorm.DB, key, fallback string) (string, error) {
	var setting SystemSetting
	err := dbc.Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fallback, nil
	}
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// SetSetting upserts a setting row.
func SetSetting(dbc *gorm.DB, key, value string) error {
	var setting SystemSetting
	err := dbc.Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dbc.Create(&SystemSetting{Key: key, Value: value}).Error
	}
	if err != nil {
		return err
	}
	return dbc.Model(&setting).Update("value", value).Error
}
