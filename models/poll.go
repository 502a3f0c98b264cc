package models

import "gorm.io/gorm"

type Poll struct {
	gorm.Model
	ClassID  uint   `gorm:"not null"`
	Question string `gorm:"not null"`
	Option1  string `gorm:"not null"`
	Option2  string `gorm:"not null"`
	Option3  string
	Option4  string
	Points   int `gorm:"default:5"`

	Responses []PollResponse `gorm:"foreignKey:PollID;constraint:OnDelete:CASCADE"`
}

// PollResponse carries a composite unique index so a second response from
// the same user is rejected by the database even when two requests race
// past the handler's existence check.
type PollResponse struct {
	gorm.Model
	PollID         uint `gorm:"not null;uniqueIndex:idx_poll_response_user"`
	UserID         uint `gorm:"not null;uniqueIndex:idx_poll_response_user"`
	SelectedOption int  `gorm:"not null"` // 1..4
	PointsEarned   int  `gorm:"default:0"`
}
