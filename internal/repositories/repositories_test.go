package repositories

import (
	"testing"

	"eggslist_backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.LocationCountry{},
		&models.LocationState{},
		&models.LocationCity{},
		&models.LocationZipCode{},
		&models.User{},
		&models.SellerApplication{},
		&models.UserFavoriteFarm{},
		&models.Category{},
		&models.Subcategory{},
		&models.ProductArticle{},
		&models.BlogCategory{},
		&models.BlogArticle{},
		&models.Testimonial{},
		&models.FAQ{},
	)
	require.NoError(t, err)

	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		Username:     email,
		PasswordHash: "x",
		SellerStatus: models.SellerStatusNone,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// createPlaceChain inserts country > state > city > zip and returns the
// zip code.
func createPlaceChain(t *testing.T, db *gorm.DB, state, city, zip string) *models.LocationZipCode {
	t.Helper()

	country := &models.LocationCountry{Name: "United States", Slug: "united-states-" + zip}
	require.NoError(t, db.Create(country).Error)

	st := &models.LocationState{Name: state, Slug: state + "-" + zip, CountryID: country.ID}
	require.NoError(t, db.Create(st).Error)

	ct := &models.LocationCity{Name: city, Slug: city + "-" + zip, StateID: st.ID}
	require.NoError(t, db.Create(ct).Error)

	zp := &models.LocationZipCode{Name: zip, Slug: zip, CityID: ct.ID}
	require.NoError(t, db.Create(zp).Error)

	return zp
}

func createSubcategory(t *testing.T, db *gorm.DB, categorySlug, slug string) *models.Subcategory {
	t.Helper()

	category := &models.Category{Name: categorySlug, Slug: categorySlug}
	require.NoError(t, db.Create(category).Error)

	subcategory := &models.Subcategory{Name: slug, Slug: slug, CategoryID: category.ID}
	require.NoError(t, db.Create(subcategory).Error)
	return subcategory
}

func createProduct(t *testing.T, db *gorm.DB, seller *models.User, subcategory *models.Subcategory, slug string) *models.ProductArticle {
	t.Helper()

	product := &models.ProductArticle{
		Title:         slug,
		Slug:          slug,
		Price:         5,
		AllowPickup:   true,
		SubcategoryID: subcategory.ID,
		SellerID:      seller.ID,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
