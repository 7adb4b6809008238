package models

// Editorial lookup content. No business rules.

type Testimonial struct {
	BaseModel
	AuthorName string `gorm:"not null"`
	AuthorRole string
	Text       string `gorm:"type:text;not null"`
	Position   int    `gorm:"default:0;index"`
}

type FAQ struct {
	BaseModel
	Question string `gorm:"type:text;not null"`
	Answer   string `gorm:"type:text;not null"`
	Position int    `gorm:"default:0;index"`
}
