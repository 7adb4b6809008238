package repositories

import (
	"testing"
	"time"

	"eggslist_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCreateSlugCollision(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	seller := createUser(t, db, "farm@example.com")
	subcategory := createSubcategory(t, db, "eggs", "chicken-eggs")

	first := &models.ProductArticle{
		Title: "Fresh Eggs", Slug: "fresh-eggs", Price: 4,
		SubcategoryID: subcategory.ID, SellerID: seller.ID,
	}
	require.NoError(t, repo.Create(first))

	second := &models.ProductArticle{
		Title: "Fresh Eggs", Slug: "fresh-eggs", Price: 6,
		SubcategoryID: subcategory.ID, SellerID: seller.ID,
	}
	err := repo.Create(second)
	assert.ErrorIs(t, err, ErrProductSlugTaken)
}

func TestListListableExcludesBannedAndHidden(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	seller := createUser(t, db, "farm@example.com")
	subcategory := createSubcategory(t, db, "eggs", "chicken-eggs")

	visible := createProduct(t, db, seller, subcategory, "visible")
	banned := createProduct(t, db, seller, subcategory, "banned")
	hidden := createProduct(t, db, seller, subcategory, "hidden")

	require.NoError(t, repo.SetBanned(banned.ID))
	require.NoError(t, repo.SetHidden(hidden.ID, true))

	products, total, err := repo.ListListable(ProductFilter{})
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.Equal(t, visible.ID, products[0].ID)
}

func TestListListableOutOfStockStaysVisible(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	seller := createUser(t, db, "farm@example.com")
	subcategory := createSubcategory(t, db, "eggs", "chicken-eggs")
	product := createProduct(t, db, seller, subcategory, "seasonal")

	require.NoError(t, repo.SetOutOfStock(product.ID, true))

	products, total, err := repo.ListListable(ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.True(t, products[0].IsOutOfStock)
}

func TestListBySellerVisibility(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	seller := createUser(t, db, "farm@example.com")
	subcategory := createSubcategory(t, db, "eggs", "chicken-eggs")

	createProduct(t, db, seller, subcategory, "public")
	hidden := createProduct(t, db, seller, subcategory, "hidden")
	banned := createProduct(t, db, seller, subcategory, "banned")

	require.NoError(t, repo.SetHidden(hidden.ID, true))
	require.NoError(t, repo.SetBanned(banned.ID))

	public, err := repo.ListBySeller(seller.ID, false)
	require.NoError(t, err)
	assert.Len(t, public, 1)

	// The owner view includes hidden products but never banned ones.
	own, err := repo.ListBySeller(seller.ID, true)
	require.NoError(t, err)
	assert.Len(t, own, 2)
	for _, p := range own {
		assert.False(t, p.IsBanned)
	}
}

func TestFindSimilarExclusions(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	seller := createUser(t, db, "farm@example.com")
	other := createUser(t, db, "other@example.com")
	third := createUser(t, db, "third@example.com")
	subcategory := createSubcategory(t, db, "eggs", "chicken-eggs")
	otherSub := createSubcategory(t, db, "dairy", "raw-milk")

	base := createProduct(t, db, seller, subcategory, "base")
	createProduct(t, db, seller, subcategory, "same-seller")
	match := createProduct(t, db, other, subcategory, "match")
	bannedMatch := createProduct(t, db, third, subcategory, "banned-match")
	createProduct(t, db, other, otherSub, "wrong-subcategory")

	require.NoError(t, repo.SetBanned(bannedMatch.ID))

	similar, err := repo.FindSimilar(subcategory.ID, base.ID, seller.ID, 6)
	require.NoError(t, err)

	require.Len(t, similar, 1)
	assert.Equal(t, match.ID, similar[0].ID)
	// The seller relation comes preloaded for card rendering.
	require.NotNil(t, similar[0].Seller)
	assert.Equal(t, other.ID, similar[0].Seller.ID)
}

func TestFindFromSameSeller(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	seller := createUser(t, db, "farm@example.com")
	other := createUser(t, db, "other@example.com")
	subcategory := createSubcategory(t, db, "eggs", "chicken-eggs")

	base := createProduct(t, db, seller, subcategory, "base")
	own := createProduct(t, db, seller, subcategory, "own")
	hiddenOwn := createProduct(t, db, seller, subcategory, "hidden-own")
	createProduct(t, db, other, subcategory, "not-mine")

	require.NoError(t, repo.SetHidden(hiddenOwn.ID, true))

	fromFarm, err := repo.FindFromSameSeller(seller.ID, base.ID, 6)
	require.NoError(t, err)

	require.Len(t, fromFarm, 1)
	assert.Equal(t, own.ID, fromFarm[0].ID)
}

func TestRecommendationOrderingNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	seller := createUser(t, db, "farm@example.com")
	other := createUser(t, db, "other@example.com")
	subcategory := createSubcategory(t, db, "eggs", "chicken-eggs")

	base := createProduct(t, db, other, subcategory, "base")

	older := createProduct(t, db, seller, subcategory, "older")
	require.NoError(t, db.Model(older).Update("created_at", time.Now().Add(-time.Hour)).Error)
	newer := createProduct(t, db, seller, subcategory, "newer")

	similar, err := repo.FindSimilar(subcategory.ID, base.ID, other.ID, 6)
	require.NoError(t, err)

	require.Len(t, similar, 2)
	assert.Equal(t, newer.ID, similar[0].ID)
	assert.Equal(t, older.ID, similar[1].ID)
}

// Seller S has A (subcategory X, listed), B (subcategory X, hidden) and
// C (subcategory Y, listed). Viewing A: "more from this farm" is {C}
// and "you may also like" contains none of A, B, C.
func TestRecommendationStripsAreDisjoint(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	s := createUser(t, db, "s@example.com")
	other := createUser(t, db, "other@example.com")
	subX := createSubcategory(t, db, "eggs", "x")
	subY := createSubcategory(t, db, "dairy", "y")

	a := createProduct(t, db, s, subX, "a")
	b := createProduct(t, db, s, subX, "b")
	c := createProduct(t, db, s, subY, "c")
	competitor := createProduct(t, db, other, subX, "competitor")

	require.NoError(t, repo.SetHidden(b.ID, true))

	fromFarm, err := repo.FindFromSameSeller(s.ID, a.ID, 6)
	require.NoError(t, err)
	require.Len(t, fromFarm, 1)
	assert.Equal(t, c.ID, fromFarm[0].ID)

	similar, err := repo.FindSimilar(subX.ID, a.ID, s.ID, 6)
	require.NoError(t, err)
	require.Len(t, similar, 1)
	assert.Equal(t, competitor.ID, similar[0].ID)

	// The two strips never overlap and neither contains the viewed
	// product.
	seen := map[string]bool{a.ID: true}
	for _, p := range append(fromFarm, similar...) {
		assert.False(t, seen[p.ID])
		seen[p.ID] = true
	}
}

func TestSetBannedRemovesFromEverything(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	seller := createUser(t, db, "farm@example.com")
	other := createUser(t, db, "other@example.com")
	subcategory := createSubcategory(t, db, "eggs", "chicken-eggs")

	base := createProduct(t, db, other, subcategory, "base")
	target := createProduct(t, db, seller, subcategory, "target")

	require.NoError(t, repo.SetBanned(target.ID))

	similar, err := repo.FindSimilar(subcategory.ID, base.ID, other.ID, 6)
	require.NoError(t, err)
	assert.Empty(t, similar)

	fromFarm, err := repo.FindFromSameSeller(seller.ID, base.ID, 6)
	require.NoError(t, err)
	assert.Empty(t, fromFarm)

	_, total, err := repo.ListListable(ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestSetFlagUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	err := repo.SetBanned("no-such-id")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestListCategoriesOrderedByPosition(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	second := &models.Category{Name: "Dairy", Slug: "dairy", Position: 2}
	first := &models.Category{Name: "Eggs", Slug: "eggs", Position: 1}
	require.NoError(t, db.Create(second).Error)
	require.NoError(t, db.Create(first).Error)

	sub := &models.Subcategory{Name: "Chicken Eggs", Slug: "chicken-eggs", CategoryID: first.ID}
	require.NoError(t, db.Create(sub).Error)

	categories, err := repo.ListCategories()
	require.NoError(t, err)

	require.Len(t, categories, 2)
	assert.Equal(t, "eggs", categories[0].Slug)
	assert.Equal(t, "dairy", categories[1].Slug)
	require.Len(t, categories[0].Subcategories, 1)
	assert.Equal(t, "chicken-eggs", categories[0].Subcategories[0].Slug)
}

func TestFindBySlugPreloadsSellerLocation(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	zip := createPlaceChain(t, db, "Oregon", "Portland", "97202")
	seller := createUser(t, db, "farm@example.com")
	require.NoError(t, db.Model(seller).Update("zip_code_id", zip.ID).Error)

	subcategory := createSubcategory(t, db, "eggs", "chicken-eggs")
	createProduct(t, db, seller, subcategory, "fresh-eggs")

	product, err := repo.FindBySlug("fresh-eggs")
	require.NoError(t, err)

	require.NotNil(t, product.Seller)
	require.NotNil(t, product.Seller.ZipCode)
	require.NotNil(t, product.Seller.ZipCode.City)
	require.NotNil(t, product.Seller.ZipCode.City.State)
	assert.Equal(t, "Oregon", product.Seller.ZipCode.City.State.Name)
	require.NotNil(t, product.Subcategory)
}

func TestFindBySlugMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	_, err := repo.FindBySlug("nope")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
