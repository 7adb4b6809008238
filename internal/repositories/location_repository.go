package repositories

import (
	"errors"

	"eggslist_backend/internal/models"

	"gorm.io/gorm"
)

var ErrZipCodeNotFound = errors.New("zip code not found")

// LocationRepository serves the static location reference data. All
// lookups eager-load the parent chain so rendering nested location data
// never issues per-row queries.
type LocationRepository interface {
	ListStates() ([]models.LocationState, error)
	ListCitiesByState(stateSlug string) ([]models.LocationCity, error)
	ListZipCodesByCity(citySlug string) ([]models.LocationZipCode, error)
	FindZipBySlug(slug string) (*models.LocationZipCode, error)
}

type LocationRepositoryImpl struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &LocationRepositoryImpl{db: db}
}

func (r *LocationRepositoryImpl) ListStates() ([]models.LocationState, error) {
	var states []models.LocationState
	err := r.db.Preload("Country").Order("name").Find(&states).Error
	return states, err
}

func (r *LocationRepositoryImpl) ListCitiesByState(stateSlug string) ([]models.LocationCity, error) {
	var cities []models.LocationCity
	err := r.db.Preload("State.Country").
		Joins("JOIN location_states ON location_states.id = location_cities.state_id").
		Where("location_states.slug = ?", stateSlug).
		Order("location_cities.name").
		Find(&cities).Error
	return cities, err
}

func (r *LocationRepositoryImpl) ListZipCodesByCity(citySlug string) ([]models.LocationZipCode, error) {
	var zips []models.LocationZipCode
	err := r.db.Preload("City.State.Country").
		Joins("JOIN location_cities ON location_cities.id = location_zip_codes.city_id").
		Where("location_cities.slug = ?", citySlug).
		Order("location_zip_codes.name").
		Find(&zips).Error
	return zips, err
}

func (r *LocationRepositoryImpl) FindZipBySlug(slug string) (*models.LocationZipCode, error) {
	var zip models.LocationZipCode
	err := r.db.Preload("City.State.Country").First(&zip, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrZipCodeNotFound
		}
		return nil, err
	}
	return &zip, nil
}
