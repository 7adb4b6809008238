package models

type BlogCategory struct {
	BaseModel
	Name string `gorm:"not null"`
	Slug string `gorm:"uniqueIndex;not null"`
}

type BlogArticle struct {
	BaseModel
	Title      string `gorm:"not null"`
	Slug       string `gorm:"uniqueIndex;not null"`
	ImagePath  string
	Body       string `gorm:"type:text;not null"`
	AuthorID   string `gorm:"not null;index"`
	CategoryID string `gorm:"not null;index"`

	Author   *User         `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Category *BlogCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}
