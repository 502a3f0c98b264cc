package models

import (
	"time"

	"gorm.io/gorm"
)

type Challenge struct {
	gorm.Model
	ClassID       uint   `gorm:"not null"`
	Title         string `gorm:"not null"`
	Description   string `gorm:"not null"`
	ChallengeType string `gorm:"not null;default:quick"` // quick, daily, weekly
	Points        int    `gorm:"default:20"`
	DueDate       *time.Time

	Responses []ChallengeResponse `gorm:"foreignKey:ChallengeID;constraint:OnDelete:CASCADE"`
}

type ChallengeResponse struct {
	gorm.Model
	ChallengeID  uint `gorm:"not null"`
	UserID       uint `gorm:"not null"`
	Submission   string
	PointsEarned int  `gorm:"default:0"`
	IsCompleted  bool `gorm:"default:false"`
}
