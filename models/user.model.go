package models

// Language is a storefront locale.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// Valid reports whether l is a supported locale.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageArabic
}

// LoginMethod is how the shopper authenticated.
type LoginMethod string

const (
	LoginEmail     LoginMethod = "Email"
	LoginPhone     LoginMethod = "Phone"
	LoginBiometric LoginMethod = "Biometric"
)

// User is the active session. At most one exists per store.
type User struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	LoginMethod LoginMethod `json:"loginMethod"`
	Identifier  string      `json:"identifier"`
}

// HousingType selects how a delivery address is composed.
type HousingType string

const (
	HousingCompound   HousingType = "Compound"
	HousingStandalone HousingType = "Standalone"
	HousingFlat       HousingType = "Flat"
	HousingTower      HousingType = "Tower"
)

// Address holds the structured delivery fields collected at checkout.
type Address struct {
	Housing   HousingType `json:"housingType"`
	Unit      string      `json:"unit,omitempty"`
	Bldg      string      `json:"bldg,omitempty"`
	Street    string      `json:"street,omitempty"`
	Zone      string      `json:"zone,omitempty"`
	Flat      string      `json:"flat,omitempty"`
	Floor     string      `json:"floor,omitempty"`
	Apartment string      `json:"apartment,omitempty"`
	BldgName  string      `json:"bldgName,omitempty"`
}
