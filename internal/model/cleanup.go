package model

import "time"

type CleanupAmount string

const (
	CleanupAmountHandful CleanupAmount = "handful"
	CleanupAmountOneBag  CleanupAmount = "one_bag"
	CleanupAmountLarge   CleanupAmount = "large"
)

type Cleanup struct {
	ID              string           `gorm:"primaryKey;column:id;type:char(36);<-:create"`
	UserID          string           `gorm:"column:user_id;type:char(36);index:idx_cleanups_user"`
	BeforePhotoURL  string           `gorm:"column:before_photo_url"`
	AfterPhotoURL   string           `gorm:"column:after_photo_url"`
	Latitude        float64          `gorm:"column:latitude"`
	Longitude       float64          `gorm:"column:longitude"`
	LocationName    *string          `gorm:"column:location_name"`
	TrashType       string           `gorm:"column:trash_type"`
	Amount          CleanupAmount    `gorm:"column:amount"`
	BeforeImageHash *string          `gorm:"column:before_image_hash;type:char(16);<-:create"`
	AfterImageHash  *string          `gorm:"column:after_image_hash;type:char(16);<-:create"`
	AIVerified      bool             `gorm:"column:ai_verified;default:false"`
	AIConfidence    *float64         `gorm:"column:ai_confidence"`
	Status          SubmissionStatus `gorm:"column:status;default:PENDING"`
	PointsEarned    int64            `gorm:"column:points_earned;default:0"`
	CreatedAt       time.Time        `gorm:"column:created_at"`
	UpdatedAt       time.Time        `gorm:"column:updated_at"`
}

func (Cleanup) TableName() string {
	return "cleanups"
}
