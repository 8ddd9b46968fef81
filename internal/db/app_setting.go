package db

import "gorm.io/gorm"

// AppSetting stores admin-editable branding as key-value pairs.
type AppSetting struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

// TableName pins the table name used by the settings reads of all clients.
func (AppSetting) TableName() string {
	return "app_settings"
}

const (
	// SettingKeyAppName is the display name shown in the client header.
	SettingKeyAppName = "app_name"
	// SettingKeyAppLogo holds the logo as a base64 data URL.
	SettingKeyAppLogo = "app_logo"
	// SettingKeyAppFavicon holds the favicon as a base64 data URL.
	SettingKeyAppFavicon = "app_favicon"
)
