package models

import (
	"time"

	"gorm.io/gorm"
)

type OnlineClass struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Description string
	TeacherID   uint   `gorm:"not null"`
	ClassCode   string `gorm:"uniqueIndex;not null;size:20"`
	IsActive    bool   `gorm:"default:true"`

	Teacher     User              `gorm:"foreignKey:TeacherID"`
	Enrollments []ClassEnrollment `gorm:"foreignKey:ClassID;constraint:OnDelete:CASCADE"`
	Quizzes     []Quiz            `gorm:"foreignKey:ClassID;constraint:OnDelete:CASCADE"`
	Polls       []Poll            `gorm:"foreignKey:ClassID;constraint:OnDelete:CASCADE"`
	Challenges  []Challenge       `gorm:"foreignKey:ClassID;constraint:OnDelete:CASCADE"`
	Posts       []DiscussionPost  `gorm:"foreignKey:ClassID;constraint:OnDelete:CASCADE"`
}

type ClassEnrollment struct {
	gorm.Model
	UserID          uint `gorm:"not null;uniqueIndex:idx_enrollment_user_class"`
	ClassID         uint `gorm:"not null;uniqueIndex:idx_enrollment_user_class"`
	AttendanceCount int  `gorm:"default:0"`
	LastAttended    *time.Time
}
