// Package dto holds the response shapes services assemble for the HTTP
// layer. Models never cross the handler boundary directly.
package dto

import (
	"strconv"

	"eggslist_backend/internal/models"
)

// ViewerContext identifies who is looking at a page. Exactly one of
// UserID and SessionID is set for a real viewer; both empty means a
// fully anonymous request with no session yet.
type ViewerContext struct {
	UserID    string
	SessionID string
	// IsSelfView is true when the viewer is the seller whose content is
	// being rendered. Hidden products stay visible on self views.
	IsSelfView bool
}

// IsAuthenticated reports whether the viewer is a signed-in user.
func (v ViewerContext) IsAuthenticated() bool {
	return v.UserID != ""
}

// Location is the flattened place chain shown next to sellers.
type Location struct {
	Zipcode string `json:"zipcode,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
}

// SellerSummary is the seller card embedded in product pages and
// listings.
type SellerSummary struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	AvatarURL        string    `json:"avatar_url,omitempty"`
	PhoneNumber      string    `json:"phone_number,omitempty"`
	Bio              string    `json:"bio,omitempty"`
	IsVerifiedSeller bool      `json:"is_verified_seller"`
	Location         *Location `json:"location,omitempty"`
}

// PersonalizedSeller is a seller summary with the viewer-dependent
// favorite flag merged in.
type PersonalizedSeller struct {
	SellerSummary
	IsFavorite bool `json:"is_favorite"`
}

// ProductSummary is the listing-card shape.
type ProductSummary struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Slug          string              `json:"slug"`
	ImageURL      string              `json:"image_url,omitempty"`
	Price         string              `json:"price"`
	AllowPickup   bool                `json:"allow_pickup"`
	AllowDelivery bool                `json:"allow_delivery"`
	IsOutOfStock  bool                `json:"is_out_of_stock"`
	// IsHidden is only ever true on the seller's own views; hidden
	// products never reach anyone else, and banned ones reach no one.
	IsHidden bool `json:"is_hidden"`
	Subcategory   string              `json:"subcategory,omitempty"`
	Seller        *PersonalizedSeller `json:"seller,omitempty"`
	CreatedAt     string              `json:"created_at"`
}

// ProductArticle is the full product page, recommendation strips
// included.
type ProductArticle struct {
	ProductSummary
	Description string `json:"description"`

	YouMayAlsoLike   []ProductSummary `json:"you_may_also_like"`
	MoreFromThisFarm []ProductSummary `json:"more_from_this_farm"`
}

// PagedProducts wraps a listing page with its total count.
type PagedProducts struct {
	Products []ProductSummary `json:"products"`
	Total    int64            `json:"total"`
}

// FormatPrice renders a price with exactly two decimal places.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}

// NewLocation flattens a zip code's place chain. Nil in, nil out.
func NewLocation(zip *models.LocationZipCode) *Location {
	if zip == nil {
		return nil
	}
	loc := &Location{Zipcode: zip.Name}
	if zip.City != nil {
		loc.City = zip.City.Name
		if zip.City.State != nil {
			loc.State = zip.City.State.Name
		}
	}
	return loc
}

// NewSellerSummary builds the seller card from a loaded user row.
func NewSellerSummary(user *models.User, avatarURL string) SellerSummary {
	return SellerSummary{
		ID:               user.ID,
		Name:             user.DisplayName(),
		AvatarURL:        avatarURL,
		PhoneNumber:      user.PhoneNumber,
		Bio:              user.Bio,
		IsVerifiedSeller: user.IsVerifiedSeller(),
		Location:         NewLocation(user.ZipCode),
	}
}
