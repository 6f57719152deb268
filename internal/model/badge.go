package model

import "time"

// UserBadge records an earned badge. One row per user/badge pair; the
// unique index makes awarding idempotent under concurrent approvals.
type UserBadge struct {
	ID       string    `gorm:"primaryKey;column:id;type:char(36);<-:create"`
	UserID   string    `gorm:"column:user_id;type:char(36);index:idx_badge_user_badge,unique"`
	BadgeID  string    `gorm:"column:badge_id;type:varchar(50);index:idx_badge_user_badge,unique"`
	EarnedAt time.Time `gorm:"column:earned_at"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
