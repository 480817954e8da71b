package models

import "github.com/jinzhu/gorm"

type User struct {
	gorm.Model
	Email    string `gorm:"unique"`
	Password string // bcrypt-хэш, никогда не plaintext
	Name     string
	Posts    []Post    `gorm:"foreignkey:UserID"`
	Comments []Comment `gorm:"foreignkey:UserID"`
}

type Post struct {
	gorm.Model
	Title    string `gorm:"unique"`
	Subtitle string
	Body     string `gorm:"type:text"`
	ImgURL   string
	// Date — отформатированная строка (как в исходном блоге), не настоящий timestamp
	Date     string
	UserID   uint
	Comments []Comment `gorm:"foreignkey:PostID"`
}

type Comment struct {
	gorm.Model
	Text   string `gorm:"type:text"`
	Date   string
	UserID uint
	PostID uint
}
