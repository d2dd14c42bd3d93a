package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint  `gorm:"not null;index:idx_bookings_user_status,priority:1" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`

	StudioID uint    `gorm:"not null;uniqueIndex:unique_studio_slot,priority:1,where:status <> 'cancelled';index:idx_bookings_studio_date,priority:1" json:"studio_id"`
	Studio   *Studio `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"studio,omitempty"`

	// YYYY-MM-DD / HH:MM, sempre com zero à esquerda para comparar como texto.
	BookingDate string `gorm:"size:10;not null;uniqueIndex:unique_studio_slot,priority:2;index:idx_bookings_studio_date,priority:2" json:"booking_date"`
	StartTime   string `gorm:"size:5;not null;uniqueIndex:unique_studio_slot,priority:3" json:"start_time"`
	EndTime     string `gorm:"size:5;not null" json:"end_time"`

	DurationHours int             `gorm:"not null" json:"duration_hours"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`

	Status string `gorm:"size:20;not null;default:'pending';index;index:idx_bookings_user_status,priority:2" json:"status"`

	PaymentMethod *string `gorm:"size:20" json:"payment_method"`
	PaymentProof  *string `gorm:"size:255" json:"payment_proof"`
	Notes         *string `gorm:"type:text" json:"notes"`

	VerifiedAt *time.Time `json:"verified_at"`
	VerifiedBy *uint      `json:"verified_by"`
	Verifier   *User      `gorm:"foreignKey:VerifiedBy;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"verifier,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
