package model

import "time"

// Comment 文章评论，创建后不可编辑或单独删除
type Comment struct {
	ID       uint `gorm:"primaryKey"`
	AuthorID uint `gorm:"index:idx_comment_author;not null"`
	Author   *User
	PostID   uint `gorm:"index:idx_comment_post;not null"`

	Text string `gorm:"type:text;not null"`

	CreatedAt time.Time
}

func (Comment) TableName() string { return "comments" }
