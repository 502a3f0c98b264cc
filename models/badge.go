package models

import (
	"time"

	"gorm.io/gorm"
)

type Badge struct {
	gorm.Model
	Name           string `gorm:"not null"`
	Description    string
	Icon           string `gorm:"size:50"`
	PointsRequired int    `gorm:"default:0"`
}

type UserBadge struct {
	gorm.Model
	UserID   uint      `gorm:"not null;uniqueIndex:idx_user_badge"`
	BadgeID  uint      `gorm:"not null;uniqueIndex:idx_user_badge"`
	EarnedAt time.Time `gorm:"autoCreateTime"`

	Badge Badge `gorm:"foreignKey:BadgeID"`
}
