package models

import "gorm.io/datatypes"

// SellerApplication is one submission in the seller verification
// workflow. A user may submit several over time; deleting the user
// removes them all.
type SellerApplication struct {
	BaseModel
	UserID string            `gorm:"not null;index"`
	Text   string            `gorm:"type:text;not null"`
	Status ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'"`

	// Extra answers from the application form, kept as submitted.
	Answers datatypes.JSON `gorm:"type:jsonb"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
