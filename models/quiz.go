package models

import "gorm.io/gorm"

type Quiz struct {
	gorm.Model
	ClassID       uint   `gorm:"not null"`
	Title         string `gorm:"not null"`
	Question      string `gorm:"not null"`
	OptionA       string `gorm:"not null"`
	OptionB       string `gorm:"not null"`
	OptionC       string `gorm:"not null"`
	OptionD       string `gorm:"not null"`
	CorrectAnswer string `gorm:"not null;size:1"` // a, b, c or d
	Points        int    `gorm:"default:10"`

	Responses []QuizResponse `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}

type QuizResponse struct {
	gorm.Model
	QuizID       uint   `gorm:"not null"`
	UserID       uint   `gorm:"not null"`
	Answer       string `gorm:"not null"`
	IsCorrect    bool   `gorm:"default:false"`
	PointsEarned int    `gorm:"default:0"`
}
