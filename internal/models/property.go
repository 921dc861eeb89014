package models

const (
	PropertyTypeApartment = "Apartment"
	PropertyTypeVilla     = "Villa"
)

type Property struct {
	ID            string  `json:"id" toml:"id"`
	Name          string  `json:"name" toml:"name"`
	Location      string  `json:"location" toml:"location"`
	ROI           float64 `json:"roi" toml:"roi"`
	MinInvestment float64 `json:"minInvestment" toml:"min_investment"`
	ImageURL      string  `json:"imageUrl" toml:"image_url"`
	RiskScore     int     `json:"riskScore" toml:"risk_score"`
	Type          string  `json:"type" toml:"type"`
	Bedrooms      int     `json:"bedrooms" toml:"bedrooms"`
	Bathrooms     int     `json:"bathrooms" toml:"bathrooms"`
	Area          int     `json:"area" toml:"area"`
}

func IsValidPropertyType(propertyType string) bool {
	switch propertyType {
	case PropertyTypeApartment, PropertyTypeVilla:
		return true
	default:
		return false
	}
}
