package catalog

import (
	_ "embed"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/terraincognita07/refboard/internal/models"
)

//go:embed properties.toml
var embeddedProperties []byte

const (
	SortDefault        = "default"
	SortROIDesc        = "roi_desc"
	SortROIAsc         = "roi_asc"
	SortInvestmentAsc  = "investment_asc"
	SortInvestmentDesc = "investment_desc"
)

// Catalog holds the static property reference data. Properties are never
// user-mutated; the catalog is loaded once at startup.
type Catalog struct {
	properties []models.Property
	byID       map[string]models.Property
}

type propertiesDocument struct {
	Properties []models.Property `toml:"properties"`
}

func Load() (*Catalog, error) {
	document := propertiesDocument{}
	if err := toml.Unmarshal(embeddedProperties, &document); err != nil {
		return nil, fmt.Errorf("parse property catalog: %w", err)
	}
	if len(document.Properties) == 0 {
		return nil, fmt.Errorf("property catalog is empty")
	}

	byID := make(map[string]models.Property, len(document.Properties))
	for _, property := range document.Properties {
		if property.ID == "" {
			return nil, fmt.Errorf("property catalog entry missing id")
		}
		if !models.IsValidPropertyType(property.Type) {
			return nil, fmt.Errorf("property %s has unknown type %q", property.ID, property.Type)
		}
		if _, exists := byID[property.ID]; exists {
			return nil, fmt.Errorf("duplicate property id %s", property.ID)
		}
		byID[property.ID] = property
	}

	return &Catalog{properties: document.Properties, byID: byID}, nil
}

func (catalog *Catalog) All() []models.Property {
	result := make([]models.Property, len(catalog.properties))
	copy(result, catalog.properties)
	return result
}

func (catalog *Catalog) ByID(id string) (models.Property, bool) {
	property, found := catalog.byID[id]
	return property, found
}

// ROIRange reports the floor of the lowest and ceiling of the highest
// projected ROI across the catalog.
func (catalog *Catalog) ROIRange() (int, int) {
	if len(catalog.properties) == 0 {
		return 0, 20
	}
	lowest := catalog.properties[0].ROI
	highest := catalog.properties[0].ROI
	for _, property := range catalog.properties[1:] {
		if property.ROI < lowest {
			lowest = property.ROI
		}
		if property.ROI > highest {
			highest = property.ROI
		}
	}
	return int(math.Floor(lowest)), int(math.Ceil(highest))
}

type Filter struct {
	Search        string
	MinROI        float64
	MaxRisk       int
	PropertyType  string
	Bedrooms      int
	FavoritesOnly bool
	Favorites     []string
	SortBy        string
}

func (catalog *Catalog) Search(filter Filter) []models.Property {
	sorted := catalog.All()
	switch filter.SortBy {
	case SortROIDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ROI > sorted[j].ROI })
	case SortROIAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ROI < sorted[j].ROI })
	case SortInvestmentAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].MinInvestment < sorted[j].MinInvestment })
	case SortInvestmentDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].MinInvestment > sorted[j].MinInvestment })
	}

	favorites := make(map[string]struct{}, len(filter.Favorites))
	for _, id := range filter.Favorites {
		favorites[id] = struct{}{}
	}

	needle := strings.ToLower(strings.TrimSpace(filter.Search))
	matched := make([]models.Property, 0, len(sorted))
	for _, property := range sorted {
		if needle != "" &&
			!strings.Contains(strings.ToLower(property.Name), needle) &&
			!strings.Contains(strings.ToLower(property.Location), needle) {
			continue
		}
		if property.ROI < filter.MinROI {
			continue
		}
		if filter.MaxRisk > 0 && property.RiskScore > filter.MaxRisk {
			continue
		}
		if filter.FavoritesOnly {
			if _, favorite := favorites[property.ID]; !favorite {
				continue
			}
		}
		if filter.PropertyType != "" && filter.PropertyType != "All" && property.Type != filter.PropertyType {
			continue
		}
		if !matchesBedrooms(property.Bedrooms, filter.Bedrooms) {
			continue
		}
		matched = append(matched, property)
	}
	return matched
}

// matchesBedrooms treats 0 as "any" and the top bucket (4) as "4 or more".
func matchesBedrooms(bedrooms int, wanted int) bool {
	if wanted == 0 {
		return true
	}
	if wanted < 4 {
		return bedrooms == wanted
	}
	return bedrooms >= 4
}
