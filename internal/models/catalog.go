package models

type Category struct {
	BaseModel
	Name      string `gorm:"not null"`
	Slug      string `gorm:"uniqueIndex;not null"`
	ImagePath string
	// Position is the explicit display order for catalog pages, not
	// insertion order.
	Position int `gorm:"default:0;index"`

	Subcategories []Subcategory `gorm:"foreignKey:CategoryID"`
}

type Subcategory struct {
	BaseModel
	Name       string `gorm:"not null"`
	Slug       string `gorm:"uniqueIndex;not null"`
	CategoryID string `gorm:"not null;index"`

	Category *Category `gorm:"foreignKey:CategoryID"`
}

type ProductArticle struct {
	BaseModel
	Title         string  `gorm:"not null"`
	Slug          string  `gorm:"uniqueIndex;not null"`
	Description   string  `gorm:"type:text"`
	ImagePath     string
	Price         float64 `gorm:"type:numeric(8,2);not null"`
	AllowPickup   bool    `gorm:"default:true"`
	AllowDelivery bool    `gorm:"default:false"`

	SubcategoryID string `gorm:"not null;index"`
	SellerID      string `gorm:"not null;index"`

	// Visibility flags. IsBanned is moderator-set and one-way; IsHidden
	// and IsOutOfStock are seller-set. Listable means
	// !IsBanned && !IsHidden; out of stock stays listable.
	IsBanned     bool `gorm:"default:false;index"`
	IsHidden     bool `gorm:"default:false;index"`
	IsOutOfStock bool `gorm:"default:false"`

	Subcategory *Subcategory `gorm:"foreignKey:SubcategoryID"`
	Seller      *User        `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
}

// IsListable reports whether the product may appear in public listings
// and recommendation sets.
func (p *ProductArticle) IsListable() bool {
	return !p.IsBanned && !p.IsHidden
}
