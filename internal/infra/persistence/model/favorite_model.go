package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FavoriteSubscriptionModel is the GORM-specific struct for the
// 'favorite_subscriptions' table. At most one live row exists per
// (user, vendor) pair, enforced by a unique index.
type FavoriteSubscriptionModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_favorite_user_vendor"`
	VendorID         uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_favorite_user_vendor"`
	NotifyWhenNearby bool      `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteSubscriptionModel) TableName() string {
	return "favorite_subscriptions"
}
