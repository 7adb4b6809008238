package models

// UserFavoriteFarm is a directed follow edge from a buyer to a seller.
// The composite unique index makes a duplicate follow a constraint
// violation, which the repository treats as "already following".
type UserFavoriteFarm struct {
	BaseModel
	UserID          string `gorm:"not null;uniqueIndex:idx_user_favorite_farm"`
	FollowingUserID string `gorm:"not null;uniqueIndex:idx_user_favorite_farm"`

	User          *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	FollowingUser *User `gorm:"foreignKey:FollowingUserID;constraint:OnDelete:CASCADE"`
}
