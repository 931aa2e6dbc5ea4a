package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeland-scout/pg-finder/internal/model"
	"github.com/homeland-scout/pg-finder/internal/repository"
)

// OwnerHandler serves the owner portal: the owner's profile, their
// listings and the interest history per listing. The owner identity
// comes from the JWT subject set by the auth middleware.
type OwnerHandler struct {
	Owners       *repository.OwnerDirectory
	Interactions *repository.InteractionLog
}

func NewOwnerHandler(owners *repository.OwnerDirectory, interactions *repository.InteractionLog) *OwnerHandler {
	return &OwnerHandler{Owners: owners, Interactions: interactions}
}

// currentOwner resolves the authenticated username to an owner
// record.
func (h *OwnerHandler) currentOwner(c echo.Context) (string, error) {
	username, ok := c.Get("username").(string)
	if !ok || username == "" {
		return "", errors.New("no authenticated owner")
	}
	o, err := h.Owners.GetByUsername(username)
	if err != nil {
		return "", err
	}
	return o.ID, nil
}

// Me returns the authenticated owner's profile.
func (h *OwnerHandler) Me(c echo.Context) error {
	ownerID, err := h.currentOwner(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown owner"})
	}
	o, err := h.Owners.Get(ownerID)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown owner"})
	}
	return c.JSON(http.StatusOK, o)
}

// MyListings resolves the owner's listing references. Ids that no
// longer resolve are skipped, so the portal keeps working after an
// admin deletes one of the owner's listings.
func (h *OwnerHandler) MyListings(c echo.Context) error {
	ownerID, err := h.currentOwner(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown owner"})
	}
	listings, err := h.Owners.OwnerListings(ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Owner-not-found renders as an empty portal, not a failure.
			return c.JSON(http.StatusOK, echo.Map{"data": []model.Listing{}, "total": 0})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": listings, "total": len(listings)})
}

// ListingInteractions returns the interest history for one of the
// owner's listings, insertion order. Listings the owner does not
// reference are forbidden; history survives listing deletion because
// ownership is by id.
func (h *OwnerHandler) ListingInteractions(c echo.Context) error {
	ownerID, err := h.currentOwner(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown owner"})
	}
	listingID := c.Param("id")
	if !h.Owners.Owns(ownerID, listingID) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "not your listing"})
	}
	ins := h.Interactions.ForListing(listingID)
	return c.JSON(http.StatusOK, echo.Map{"data": ins, "total": len(ins)})
}
