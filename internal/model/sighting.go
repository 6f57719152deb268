package model

import "time"

type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "PENDING"
	SubmissionStatusApproved SubmissionStatus = "APPROVED"
	SubmissionStatusRejected SubmissionStatus = "REJECTED"
)

type Sighting struct {
	ID           string           `gorm:"primaryKey;column:id;type:char(36);<-:create"`
	UserID       string           `gorm:"column:user_id;type:char(36);index:idx_sightings_user"`
	CreatureID   *string          `gorm:"column:creature_id"`
	PhotoURL     string           `gorm:"column:photo_url"`
	Latitude     float64          `gorm:"column:latitude"`
	Longitude    float64          `gorm:"column:longitude"`
	LocationName *string          `gorm:"column:location_name"`
	Memo         *string          `gorm:"column:memo"`
	// 64-bit perceptual hash, 16 hex chars. Never recomputed after create.
	ImageHash    *string          `gorm:"column:image_hash;type:char(16);<-:create"`
	AISuggestion *string          `gorm:"column:ai_suggestion"`
	AIConfidence *float64         `gorm:"column:ai_confidence"`
	Status       SubmissionStatus `gorm:"column:status;default:PENDING"`
	PointsEarned int64            `gorm:"column:points_earned;default:0"`
	CreatedAt    time.Time        `gorm:"column:created_at"`
	UpdatedAt    time.Time        `gorm:"column:updated_at"`
}

func (Sighting) TableName() string {
	return "sightings"
}
