package model

// PriceRange is an inclusive rent bound. Min <= Max is expected but
// not enforced; an inverted range simply matches nothing.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// SearchFilters is an ephemeral query specification built per search.
// StudentName is carried for contact capture and logging only; it
// must never influence which listings match.
type SearchFilters struct {
	StudentName      string     `json:"studentName"`
	GenderPreference Gender     `json:"genderPreference"`
	PriceRange       PriceRange `json:"priceRange"`
	Location         string     `json:"location"`
}

// DefaultFilters mirrors the search form's initial state: any gender,
// the 5000-20000 rent band, all locations.
func DefaultFilters() SearchFilters {
	return SearchFilters{
		GenderPreference: GenderAny,
		PriceRange:       PriceRange{Min: 5000, Max: 20000},
	}
}
