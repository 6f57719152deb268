package model

import "time"

// AquariumEntry is one purchased unit of a creature. Duplicates per
// user/creature are allowed; no unique index here.
type AquariumEntry struct {
	ID          string    `gorm:"primaryKey;column:id;type:char(36);<-:create"`
	UserID      string    `gorm:"column:user_id;type:char(36);index:idx_aquarium_user"`
	CreatureID  string    `gorm:"column:creature_id;type:varchar(50)"`
	PositionX   float64   `gorm:"column:position_x;default:0"`
	PositionY   float64   `gorm:"column:position_y;default:0"`
	PurchasedAt time.Time `gorm:"column:purchased_at"`
}

func (AquariumEntry) TableName() string {
	return "aquarium"
}

// PurchaseRecord is the append-only audit row written alongside each
// aquarium entry. Never updated or deleted.
type PurchaseRecord struct {
	ID          string    `gorm:"primaryKey;column:id;type:char(36);<-:create"`
	UserID      string    `gorm:"column:user_id;type:char(36);index:idx_purchase_user"`
	CreatureID  string    `gorm:"column:creature_id;type:varchar(50)"`
	PointsSpent int64     `gorm:"column:points_spent;not null"`
	PurchasedAt time.Time `gorm:"column:purchased_at;<-:create"`
}

func (PurchaseRecord) TableName() string {
	return "purchase_history"
}
