package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FlashDealModel is the GORM-specific struct for the 'flash_deals' table.
// CurrentRedemptions is only mutated through a guarded UPDATE so the
// capacity limit holds under concurrent redemptions.
type FlashDealModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Title              string    `gorm:"type:varchar(255);not null"`
	Category           string    `gorm:"type:varchar(100);not null;index"`
	OriginalPrice      float64   `gorm:"type:decimal(10,2);not null"`
	FlashPrice         float64   `gorm:"type:decimal(10,2);not null"`
	ExpiresAt          time.Time `gorm:"not null;index"`
	MaxRedemptions     *int
	CurrentRedemptions int `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (FlashDealModel) TableName() string {
	return "flash_deals"
}
