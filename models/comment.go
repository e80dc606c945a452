package models

import "time"

// Comment belongs to exactly one post. The body is capped at 100 characters.
type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Body      string    `gorm:"size:100;not null" json:"body"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	PostID    uint      `gorm:"index;not null" json:"post_id"`
	CreatedAt time.Time `json:"date_posted"`
	UpdatedAt time.Time `json:"-"`

	Author User   `gorm:"foreignKey:UserID" json:"author"`
	Likes  []Like `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"-"`
}
