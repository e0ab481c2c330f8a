package models

import "time"

// Temperature options a menu can be served with.
const (
	TempHot  = "hot"
	TempIce  = "ice"
	TempBoth = "both"
	TempNone = "none"
)

type Menu struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"type:varchar(100);not null" json:"name"`
	Category          string    `gorm:"type:varchar(50);not null;index" json:"category"`
	Price             int       `gorm:"not null" json:"price"`
	Description       string    `gorm:"type:text" json:"description"`
	Image             *string   `gorm:"type:varchar(255)" json:"image,omitempty"`
	TemperatureOption string    `gorm:"type:varchar(20);not null;default:'both'" json:"temperature_option"`
	DisplayOrder      int       `gorm:"not null;default:9999" json:"display_order"`
	IsSoldOut         bool      `gorm:"not null;default:false" json:"is_soldout"`
	CreatedAt         time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null" json:"updated_at"`
}

func IsValidTemperatureOption(opt string) bool {
	switch opt {
	case TempHot, TempIce, TempBoth, TempNone:
		return true
	}
	return false
}
