package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertPreferencesModel is the GORM-specific struct for the 'alert_preferences'
// table. Vendor and category subscriptions are stored as JSONB documents; an
// empty array means "subscribed to everything" for that dimension.
type AlertPreferencesModel struct {
	UserID               uuid.UUID `gorm:"type:uuid;primary_key"`
	SubscribedVendors    []byte    `gorm:"type:jsonb;not null;default:'[]'"`
	SubscribedCategories []byte    `gorm:"type:jsonb;not null;default:'[]'"`
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlertPreferencesModel) TableName() string {
	return "alert_preferences"
}
