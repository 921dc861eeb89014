package catalog

import "testing"

func TestLoadEmbeddedCatalog(t *testing.T) {
	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if len(loaded.All()) != 6 {
		t.Fatalf("expected 6 catalog properties, got %d", len(loaded.All()))
	}

	property, found := loaded.ByID("p1")
	if !found {
		t.Fatalf("expected property p1 in catalog")
	}
	if property.Name != "The Palm Tower" || property.MinInvestment != 50000 {
		t.Fatalf("unexpected p1 payload: %#v", property)
	}

	if _, found := loaded.ByID("p999"); found {
		t.Fatalf("did not expect unknown property id to resolve")
	}
}

func TestROIRange(t *testing.T) {
	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	lowest, highest := loaded.ROIRange()
	if lowest != 7 || highest != 13 {
		t.Fatalf("expected ROI range [7, 13], got [%d, %d]", lowest, highest)
	}
}

func TestSearchFiltersAndSorts(t *testing.T) {
	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	villas := loaded.Search(Filter{PropertyType: "Villa", SortBy: SortROIDesc})
	if len(villas) != 2 {
		t.Fatalf("expected 2 villas, got %d", len(villas))
	}
	if villas[0].ID != "p6" || villas[1].ID != "p4" {
		t.Fatalf("expected villas sorted by ROI descending, got %#v", villas)
	}

	fourPlus := loaded.Search(Filter{Bedrooms: 4})
	for _, property := range fourPlus {
		if property.Bedrooms < 4 {
			t.Fatalf("expected only 4+ bedroom properties, got %#v", property)
		}
	}

	harbour := loaded.Search(Filter{Search: "harbour"})
	if len(harbour) != 1 || harbour[0].ID != "p3" {
		t.Fatalf("expected location search to match p3, got %#v", harbour)
	}

	lowRisk := loaded.Search(Filter{MaxRisk: 3})
	for _, property := range lowRisk {
		if property.RiskScore > 3 {
			t.Fatalf("expected only risk score 3 or lower, got %#v", property)
		}
	}
	if len(lowRisk) != 3 {
		t.Fatalf("expected 3 low-risk properties, got %d", len(lowRisk))
	}

	favorites := loaded.Search(Filter{FavoritesOnly: true, Favorites: []string{"p2"}})
	if len(favorites) != 1 || favorites[0].ID != "p2" {
		t.Fatalf("expected favorites-only search to match p2, got %#v", favorites)
	}

	cheapFirst := loaded.Search(Filter{SortBy: SortInvestmentAsc})
	if cheapFirst[0].ID != "p5" {
		t.Fatalf("expected p5 with lowest minimum investment first, got %#v", cheapFirst[0])
	}
}
