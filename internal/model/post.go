package model

// Post 博客文章
type Post struct {
	ID       uint `gorm:"primaryKey"`
	AuthorID uint `gorm:"index:idx_post_author;not null"`
	Author   *User

	// AuthorName 展示用作者名：创建时取作者名，每次编辑被覆盖为编辑者名
	// （沿袭原有行为，AuthorID 外键本身不变）
	AuthorName string `gorm:"type:varchar(250);not null"`

	Title    string `gorm:"type:varchar(250);uniqueIndex;not null"`
	Subtitle string `gorm:"type:varchar(250);not null"`
	// Date 创建日展示文本（"January 02, 2006"），落库后不再变更
	Date   string `gorm:"type:varchar(250);not null"`
	Body   string `gorm:"type:text;not null"`
	ImgURL string `gorm:"type:varchar(250);not null"`

	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

func (Post) TableName() string { return "blog_posts" }
