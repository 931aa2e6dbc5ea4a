// Package search implements the listing filter engine. Apply is a
// pure function over a listing slice; it never mutates its input and
// never reorders matches.
package search

import "github.com/homeland-scout/pg-finder/internal/model"

// Apply returns the listings that satisfy every predicate in spec.
// Matches keep the relative order of the input; an empty result is a
// valid outcome. spec.StudentName is display-only and does not take
// part in matching.
func Apply(listings []model.Listing, spec model.SearchFilters) []model.Listing {
	out := make([]model.Listing, 0, len(listings))
	for _, l := range listings {
		if Matches(l, spec) {
			out = append(out, l)
		}
	}
	return out
}

// Matches reports whether a single listing passes the conjunction of
// the gender, price and location predicates.
func Matches(l model.Listing, spec model.SearchFilters) bool {
	return matchGender(l, spec) && matchPrice(l, spec) && matchLocation(l, spec)
}

func matchGender(l model.Listing, spec model.SearchFilters) bool {
	if spec.GenderPreference == model.GenderAny {
		return true
	}
	return l.GenderPreference == spec.GenderPreference
}

// Both bounds are inclusive. An inverted range (min > max) matches
// nothing, which is the caller's problem to avoid.
func matchPrice(l model.Listing, spec model.SearchFilters) bool {
	return l.MonthlyRent >= spec.PriceRange.Min && l.MonthlyRent <= spec.PriceRange.Max
}

func matchLocation(l model.Listing, spec model.SearchFilters) bool {
	if spec.Location == "" {
		return true
	}
	return l.Location == spec.Location
}
