package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeland-scout/pg-finder/internal/model"
	"github.com/homeland-scout/pg-finder/internal/repository"
)

func testAdminHandler() (*AdminHandler, *repository.ListingStore) {
	listings := repository.NewListingStore(model.SeedListings())
	cache := repository.NewSearchCache(nil, time.Minute)
	return NewAdminHandler(listings, cache, nil), listings
}

func adminCtx(e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, echo.Context) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func TestCreateListing(t *testing.T) {
	h, store := testAdminHandler()
	body := `{
		"name": "New Horizon PG",
		"images": ["/assets/new.jpg"],
		"monthlyRent": 8500,
		"genderPreference": "Co-ed",
		"location": "Whitefield",
		"area": "Bangalore",
		"phoneNumber": "+91 9111111111",
		"rating": 4.3,
		"amenities": ["WiFi", "Meals"],
		"roomType": "Double",
		"description": "Freshly added",
		"verified": false,
		"availability": "Available"
	}`
	rec, c := adminCtx(echo.New(), http.MethodPost, "/v1/admin/listings", body)
	require.NoError(t, h.CreateListing(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.Listing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 6, store.Len())

	// New listing lands at the end of the collection.
	all := store.All()
	assert.Equal(t, created.ID, all[5].ID)
}

func TestCreateListingValidation(t *testing.T) {
	h, store := testAdminHandler()
	rec, c := adminCtx(echo.New(), http.MethodPost, "/v1/admin/listings", `{"name":"Broken"}`)
	require.NoError(t, h.CreateListing(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 5, store.Len())
}

func TestUpdateListingPartialPatch(t *testing.T) {
	h, store := testAdminHandler()
	rec, c := adminCtx(echo.New(), http.MethodPut, "/v1/admin/listings/2", `{"availability":"Full"}`)
	c.SetParamNames("id")
	c.SetParamValues("2")
	require.NoError(t, h.UpdateListing(c))
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := store.Get("2")
	require.NoError(t, err)
	assert.Equal(t, model.AvailabilityFull, got.Availability)
	assert.Equal(t, "Sunrise Residency", got.Name)
	assert.Equal(t, 7000, got.MonthlyRent)
}

func TestUpdateListingUnknownID(t *testing.T) {
	h, _ := testAdminHandler()
	rec, c := adminCtx(echo.New(), http.MethodPut, "/v1/admin/listings/404", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("404")
	require.NoError(t, h.UpdateListing(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteListingTwice(t *testing.T) {
	h, store := testAdminHandler()
	e := echo.New()

	rec, c := adminCtx(e, http.MethodDelete, "/v1/admin/listings/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, h.DeleteListing(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 4, store.Len())

	rec2, c2 := adminCtx(e, http.MethodDelete, "/v1/admin/listings/5", "")
	c2.SetParamNames("id")
	c2.SetParamValues("5")
	require.NoError(t, h.DeleteListing(c2))
	assert.Equal(t, http.StatusNotFound, rec2.Code)
}

func TestListListings(t *testing.T) {
	h, _ := testAdminHandler()
	rec, c := adminCtx(echo.New(), http.MethodGet, "/v1/admin/listings", "")
	require.NoError(t, h.ListListings(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp listingsResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Total)
}
