package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Studio struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:255;not null;index" json:"name"`
	Description *string         `gorm:"type:text" json:"description"`
	HourlyRate  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"hourly_rate"`
	Facilities  *string         `gorm:"type:text" json:"facilities"`

	Image      *string `gorm:"size:255" json:"image"`
	ImageThumb *string `gorm:"size:255" json:"image_thumb"`

	// sem default na tag: o GORM ignoraria um false explícito no Create.
	IsActive bool `gorm:"not null;index;index:idx_studios_active_created,priority:1" json:"is_active"`

	CreatedAt time.Time `gorm:"index:idx_studios_active_created,priority:2" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
