package models

import "time"

// DefaultProfileImage is the placeholder picture assigned at registration.
const DefaultProfileImage = "/static/profile_pics/default.jpg"

// User owns posts, comments and likes. The admin flag is a "True"/"False"
// string, carried over from the legacy schema.
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Username  string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	ImageFile string    `gorm:"size:255;not null" json:"image_file"`
	Password  string    `gorm:"size:120;not null" json:"-"`
	IsAdmin   string    `gorm:"size:100;not null;default:'False'" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Posts    []Post    `gorm:"foreignKey:UserID" json:"-"`
	Comments []Comment `gorm:"foreignKey:UserID" json:"-"`
	Likes    []Like    `gorm:"foreignKey:UserID" json:"-"`
}

// Admin reports whether the user holds the admin flag.
func (u *User) Admin() bool {
	return u.IsAdmin == "True"
}
