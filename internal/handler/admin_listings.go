package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/homeland-scout/pg-finder/internal/model"
	"github.com/homeland-scout/pg-finder/internal/repository"
)

// AdminHandler serves the management console's listing CRUD. Every
// mutation invalidates the search cache and, when an archive is
// configured, mirrors the change to MySQL best-effort: archive
// failures are logged, never returned to the admin.
type AdminHandler struct {
	Listings *repository.ListingStore
	Cache    *repository.SearchCache
	Archive  *repository.Archive // nil when no database is configured
}

func NewAdminHandler(listings *repository.ListingStore, cache *repository.SearchCache, archive *repository.Archive) *AdminHandler {
	return &AdminHandler{Listings: listings, Cache: cache, Archive: archive}
}

// ListListings returns the full collection, store order.
func (h *AdminHandler) ListListings(c echo.Context) error {
	all := h.Listings.All()
	return c.JSON(http.StatusOK, echo.Map{"data": all, "total": len(all)})
}

// CreateListing validates and appends a new listing. The id is
// assigned by the store unless the payload carries one.
func (h *AdminHandler) CreateListing(c echo.Context) error {
	var l model.Listing
	if err := c.Bind(&l); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	stored, err := h.Listings.Add(l)
	if err != nil {
		if errors.Is(err, repository.ErrValidation) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	h.afterMutation(c, func(ctx context.Context) error {
		return h.Archive.Save(ctx, stored, h.Listings.Len()-1)
	})
	return c.JSON(http.StatusCreated, stored)
}

// UpdateListing merges a partial patch over an existing listing.
func (h *AdminHandler) UpdateListing(c echo.Context) error {
	var patch model.ListingPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	updated, err := h.Listings.Update(c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "listing not found"})
		case errors.Is(err, repository.ErrValidation):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	h.afterMutation(c, func(ctx context.Context) error {
		// Position only matters on insert; the upsert leaves it alone.
		return h.Archive.Save(ctx, updated, 0)
	})
	return c.JSON(http.StatusOK, updated)
}

// DeleteListing removes a listing. A repeat delete of the same id is
// 404, not a silent success.
func (h *AdminHandler) DeleteListing(c echo.Context) error {
	id := c.Param("id")
	if err := h.Listings.Remove(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "listing not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	h.afterMutation(c, func(ctx context.Context) error {
		return h.Archive.Delete(ctx, id)
	})
	return c.NoContent(http.StatusNoContent)
}

// afterMutation invalidates the search cache and runs the archive
// mirror with a short timeout.
func (h *AdminHandler) afterMutation(c echo.Context, mirror func(context.Context) error) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	h.Cache.Invalidate(ctx)
	if h.Archive == nil {
		return
	}
	if err := mirror(ctx); err != nil {
		log.Printf("archive: mirror failed: %v", err)
	}
}
