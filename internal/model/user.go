package model

import "time"

type User struct {
	ID           string    `gorm:"primaryKey;column:id;type:char(36);<-:create"`
	Email        string    `gorm:"column:email;index:idx_users_email,unique"`
	Nickname     string    `gorm:"column:nickname"`
	ProfileImage *string   `gorm:"column:profile_image"`
	Points       int64     `gorm:"column:points;not null;default:0"`
	IsAdmin      bool      `gorm:"column:is_admin;default:false"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}
