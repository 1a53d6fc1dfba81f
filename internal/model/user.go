package model

import "time"

// User 注册用户。Password 只存 PBKDF2 哈希，永不存明文。
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Email    string `gorm:"type:varchar(250);uniqueIndex;not null"`
	Password string `gorm:"type:varchar(250);not null"`
	Name     string `gorm:"type:varchar(250);not null"`

	Posts    []Post    `gorm:"foreignKey:AuthorID"`
	Comments []Comment `gorm:"foreignKey:AuthorID"`

	CreatedAt time.Time
}

func (User) TableName() string { return "users" }
