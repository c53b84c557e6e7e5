package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VendorListingModel is the GORM-specific struct for the 'vendor_listings' table.
// It represents a vendor's storefront listing and its last published location.
type VendorListingModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index"`
	BusinessName       string    `gorm:"type:varchar(255);not null"`
	Category           string    `gorm:"type:varchar(100);not null;index"`
	LocationLat        float64   `gorm:"type:decimal(10,7);not null"`
	LocationLng        float64   `gorm:"type:decimal(10,7);not null"`
	City               string    `gorm:"type:varchar(100)"`
	State              string    `gorm:"type:varchar(50)"`
	LastLocationUpdate *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (VendorListingModel) TableName() string {
	return "vendor_listings"
}
