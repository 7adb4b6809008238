package models

// Static reference data: country > state > city > zip code. Slugs are the
// stable external keys.

type LocationCountry struct {
	BaseModel
	Name string `gorm:"not null"`
	Slug string `gorm:"uniqueIndex;not null"`

	States []LocationState `gorm:"foreignKey:CountryID"`
}

type LocationState struct {
	BaseModel
	Name      string `gorm:"not null"`
	Slug      string `gorm:"uniqueIndex;not null"`
	CountryID string `gorm:"not null;index"`

	Country *LocationCountry `gorm:"foreignKey:CountryID"`
	Cities  []LocationCity   `gorm:"foreignKey:StateID"`
}

type LocationCity struct {
	BaseModel
	Name    string `gorm:"not null"`
	Slug    string `gorm:"uniqueIndex;not null"`
	StateID string `gorm:"not null;index"`

	State    *LocationState    `gorm:"foreignKey:StateID"`
	ZipCodes []LocationZipCode `gorm:"foreignKey:CityID"`
}

type LocationZipCode struct {
	BaseModel
	// Name is the zip code itself, e.g. "97202".
	Name   string `gorm:"not null"`
	Slug   string `gorm:"uniqueIndex;not null"`
	CityID string `gorm:"not null;index"`

	City *LocationCity `gorm:"foreignKey:CityID"`
}
