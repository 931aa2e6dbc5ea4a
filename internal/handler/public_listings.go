package handler

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/homeland-scout/pg-finder/internal/model"
	"github.com/homeland-scout/pg-finder/internal/repository"
	"github.com/homeland-scout/pg-finder/internal/search"
)

// PublicHandler serves the unauthenticated browse surface: listing
// search, listing detail, the location list and the stats strip.
type PublicHandler struct {
	Listings *repository.ListingStore
	Cache    *repository.SearchCache
}

func NewPublicHandler(listings *repository.ListingStore, cache *repository.SearchCache) *PublicHandler {
	return &PublicHandler{Listings: listings, Cache: cache}
}

// filtersFromQuery builds a SearchFilters from query parameters.
// Absent price bounds are unbounded rather than the UI's default
// band, so a bare GET /v1/listings returns everything.
func filtersFromQuery(c echo.Context) (model.SearchFilters, error) {
	spec := model.SearchFilters{
		StudentName:      strings.TrimSpace(c.QueryParam("student_name")),
		GenderPreference: model.GenderAny,
		PriceRange:       model.PriceRange{Min: 0, Max: math.MaxInt32},
		Location:         strings.TrimSpace(c.QueryParam("location")),
	}
	if g := strings.TrimSpace(c.QueryParam("gender")); g != "" {
		gp := model.Gender(g)
		if gp != model.GenderAny && !gp.Valid() {
			return spec, errors.New("unknown gender preference")
		}
		spec.GenderPreference = gp
	}
	if v := c.QueryParam("min_price"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return spec, errors.New("min_price must be an integer")
		}
		spec.PriceRange.Min = n
	}
	if v := c.QueryParam("max_price"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return spec, errors.New("max_price must be an integer")
		}
		spec.PriceRange.Max = n
	}
	return spec, nil
}

// SearchListings returns the listings matching the query filters, in
// store order. Results are served from the search cache when one is
// configured.
func (h *PublicHandler) SearchListings(c echo.Context) error {
	spec, err := filtersFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if spec.StudentName != "" {
		// Display-only; logged for contact capture, never filtered on.
		log.Printf("search: student=%q gender=%s location=%q", spec.StudentName, spec.GenderPreference, spec.Location)
	}

	ctx := c.Request().Context()
	if cached, ok := h.Cache.Get(ctx, spec); ok {
		return c.JSON(http.StatusOK, echo.Map{"data": cached, "total": len(cached)})
	}

	matched := search.Apply(h.Listings.All(), spec)
	h.Cache.Set(ctx, spec, matched)
	return c.JSON(http.StatusOK, echo.Map{"data": matched, "total": len(matched)})
}

// GetListing returns one listing by id.
func (h *PublicHandler) GetListing(c echo.Context) error {
	l, err := h.Listings.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "listing not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
	}
	return c.JSON(http.StatusOK, l)
}

// GetLocations returns the fixed set of named areas.
func (h *PublicHandler) GetLocations(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": model.Locations})
}

// GetStats returns the dashboard stats strip: totals, availability,
// average rating and verified count.
func (h *PublicHandler) GetStats(c echo.Context) error {
	all := h.Listings.All()
	var available, verified int
	var ratingSum float64
	for _, l := range all {
		if l.Availability == model.AvailabilityAvailable {
			available++
		}
		if l.Verified {
			verified++
		}
		ratingSum += l.Rating
	}
	avg := 0.0
	if len(all) > 0 {
		avg = ratingSum / float64(len(all))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"total":          len(all),
		"available":      available,
		"verified":       verified,
		"average_rating": math.Round(avg*10) / 10,
	})
}
