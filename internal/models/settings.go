package models

// SettingsID is the fixed primary key of the AppSettings singleton row.
const SettingsID = "settings"

// AppSettings is a single-row table holding global configuration, including
// the demo-mode flag the reset scheduler checks on every tick.
type AppSettings struct {
	ID                string `gorm:"column:id;primaryKey" json:"id"`
	AppName           string `gorm:"column:appName" json:"appName"`
	LogoURL           string `gorm:"column:logoUrl" json:"logoUrl"`
	PrimaryColor      string `gorm:"column:primaryColor" json:"primaryColor"`
	ContractTemplate  string `gorm:"column:contractTemplate" json:"contractTemplate"`
	StatementTemplate string `gorm:"column:statementTemplate" json:"statementTemplate"`
	IsDemoMode        bool   `gorm:"column:isDemoMode" json:"isDemoMode"`
}

func (AppSettings) TableName() string { return "appSettings" }

// DefaultSettings is what load-data reports before the singleton row has
// ever been saved. It is not persisted.
func DefaultSettings() AppSettings {
	return AppSettings{
		ID:                SettingsID,
		AppName:           "نظام عقاري",
		PrimaryColor:      "indigo",
		ContractTemplate:  "default",
		StatementTemplate: "default",
	}
}
