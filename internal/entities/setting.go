package entities

import (
	"time"
)

type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Known setting keys
const (
	// Book type preselected by the add-book form
	SettingKeyDefaultBookType = "default_book_type"
	// Directory used by export when none is given
	SettingKeyExportDir = "export_dir"
)

// SettingKeys lists the keys the shell accepts in `set`.
var SettingKeys = []string{SettingKeyDefaultBookType, SettingKeyExportDir}
