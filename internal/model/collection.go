package model

import "time"

// CollectionEntry marks a creature as discovered by a user. One row per
// user/creature pair; the unique index backs the first-discovery bonus.
type CollectionEntry struct {
	ID              string    `gorm:"primaryKey;column:id;type:char(36);<-:create"`
	UserID          string    `gorm:"column:user_id;type:char(36);index:idx_collection_user_creature,unique"`
	CreatureID      string    `gorm:"column:creature_id;type:varchar(50);index:idx_collection_user_creature,unique"`
	FirstSightingID *string   `gorm:"column:first_sighting_id;type:char(36)"`
	DiscoveredAt    time.Time `gorm:"column:discovered_at"`
}

func (CollectionEntry) TableName() string {
	return "user_collections"
}
