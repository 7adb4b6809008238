package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	u := &User{Username: "hen-house", FirstName: "Pat", LastName: "Farmer"}
	assert.Equal(t, "Pat Farmer", u.DisplayName())

	u.LastName = ""
	assert.Equal(t, "Pat", u.DisplayName())

	u.FirstName = ""
	u.LastName = "Farmer"
	assert.Equal(t, "Farmer", u.DisplayName())

	u.LastName = ""
	assert.Equal(t, "hen-house", u.DisplayName())
}

func TestHasCompleteSellerProfile(t *testing.T) {
	zipID := "zip-1"

	u := &User{}
	assert.False(t, u.HasCompleteSellerProfile())

	u.FirstName = "Pat"
	assert.False(t, u.HasCompleteSellerProfile(), "name alone is not enough")

	u.ZipCodeID = &zipID
	assert.True(t, u.HasCompleteSellerProfile())

	u.FirstName = ""
	assert.False(t, u.HasCompleteSellerProfile(), "location alone is not enough")

	u.LastName = "Farmer"
	assert.True(t, u.HasCompleteSellerProfile())
}

func TestSellerStatusValid(t *testing.T) {
	assert.True(t, SellerStatusNone.Valid())
	assert.True(t, SellerStatusPending.Valid())
	assert.True(t, SellerStatusVerified.Valid())
	assert.False(t, SellerStatus("approved").Valid())
	assert.False(t, SellerStatus("").Valid())
}

func TestProductIsListable(t *testing.T) {
	p := &ProductArticle{}
	assert.True(t, p.IsListable())

	p.IsOutOfStock = true
	assert.True(t, p.IsListable(), "out of stock stays listable")

	p.IsHidden = true
	assert.False(t, p.IsListable())

	p.IsHidden = false
	p.IsBanned = true
	assert.False(t, p.IsListable())
}
