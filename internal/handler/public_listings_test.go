package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeland-scout/pg-finder/internal/model"
	"github.com/homeland-scout/pg-finder/internal/repository"
)

func testPublicHandler() *PublicHandler {
	listings := repository.NewListingStore(model.SeedListings())
	return NewPublicHandler(listings, repository.NewSearchCache(nil, time.Minute))
}

func getCtx(e *echo.Echo, path string, query url.Values) (*httptest.ResponseRecorder, echo.Context) {
	target := path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

type listingsResp struct {
	Data  []model.Listing `json:"data"`
	Total int             `json:"total"`
}

func TestSearchListingsNoFiltersReturnsAll(t *testing.T) {
	h := testPublicHandler()
	rec, c := getCtx(echo.New(), "/v1/listings", nil)
	require.NoError(t, h.SearchListings(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp listingsResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, "1", resp.Data[0].ID)
	assert.Equal(t, "5", resp.Data[4].ID)
}

func TestSearchListingsByLocation(t *testing.T) {
	h := testPublicHandler()
	q := url.Values{"location": {"Koramangala"}, "gender": {"Any"}, "min_price": {"5000"}, "max_price": {"20000"}}
	rec, c := getCtx(echo.New(), "/v1/listings", q)
	require.NoError(t, h.SearchListings(c))

	var resp listingsResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Green Valley PG", resp.Data[0].Name)
}

func TestSearchListingsByGenderAndPrice(t *testing.T) {
	h := testPublicHandler()
	q := url.Values{"gender": {"Female"}, "max_price": {"7000"}}
	rec, c := getCtx(echo.New(), "/v1/listings", q)
	require.NoError(t, h.SearchListings(c))

	var resp listingsResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Comfort Zone", resp.Data[0].Name)
}

func TestSearchListingsRejectsBadParams(t *testing.T) {
	h := testPublicHandler()
	for name, q := range map[string]url.Values{
		"unknown gender": {"gender": {"Other"}},
		"min not int":    {"min_price": {"cheap"}},
		"max not int":    {"max_price": {"9k"}},
	} {
		rec, c := getCtx(echo.New(), "/v1/listings", q)
		require.NoError(t, h.SearchListings(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
	}
}

func TestSearchListingsStudentNameIgnored(t *testing.T) {
	h := testPublicHandler()
	rec, c := getCtx(echo.New(), "/v1/listings", url.Values{"student_name": {"Ankit"}})
	require.NoError(t, h.SearchListings(c))

	var resp listingsResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Total)
}

func TestGetListing(t *testing.T) {
	h := testPublicHandler()
	e := echo.New()

	rec, c := getCtx(e, "/v1/listings/3", nil)
	c.SetParamNames("id")
	c.SetParamValues("3")
	require.NoError(t, h.GetListing(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rose Garden PG")

	rec2, c2 := getCtx(e, "/v1/listings/404", nil)
	c2.SetParamNames("id")
	c2.SetParamValues("404")
	require.NoError(t, h.GetListing(c2))
	assert.Equal(t, http.StatusNotFound, rec2.Code)
}

func TestGetLocations(t *testing.T) {
	h := testPublicHandler()
	rec, c := getCtx(echo.New(), "/v1/locations", nil)
	require.NoError(t, h.GetLocations(c))
	require.Equal(t, http.StatusOK, rec.Code)
	for _, loc := range model.Locations {
		assert.Contains(t, rec.Body.String(), loc)
	}
}

func TestGetStats(t *testing.T) {
	h := testPublicHandler()
	rec, c := getCtx(echo.New(), "/v1/stats", nil)
	require.NoError(t, h.GetStats(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var stats struct {
		Total         int     `json:"total"`
		Available     int     `json:"available"`
		Verified      int     `json:"verified"`
		AverageRating float64 `json:"average_rating"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 3, stats.Available)
	assert.Equal(t, 5, stats.Verified)
	// (4.5+4.2+4.7+4.0+4.8)/5 = 4.44, rounded to one decimal.
	assert.InDelta(t, 4.4, stats.AverageRating, 0.001)
}
