package models

import "gorm.io/gorm"

// DiscussionPost with a nil ParentID is a top-level post; replies point at a
// top-level post directly, so threads never nest deeper than one level.
type DiscussionPost struct {
	gorm.Model
	ClassID  uint   `gorm:"not null"`
	UserID   uint   `gorm:"not null"`
	Content  string `gorm:"not null"`
	ParentID *uint  `gorm:"index"`

	User    User             `gorm:"foreignKey:UserID"`
	Replies []DiscussionPost `gorm:"foreignKey:ParentID"`
}
