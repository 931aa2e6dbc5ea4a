package repository

import (
	"fmt"

	"github.com/homeland-scout/pg-finder/internal/model"
)

// OwnerDirectory maps owner identities to the listing ids they
// manage. Owner records are static in this deployment; the directory
// only resolves, never mutates.
type OwnerDirectory struct {
	byID       map[string]model.Owner
	byUsername map[string]string // username -> owner id
	listings   *ListingStore
}

// NewOwnerDirectory indexes the given owners and binds the directory
// to the listing store used to resolve ownership references.
func NewOwnerDirectory(owners []model.Owner, listings *ListingStore) *OwnerDirectory {
	d := &OwnerDirectory{
		byID:       make(map[string]model.Owner, len(owners)),
		byUsername: make(map[string]string, len(owners)),
		listings:   listings,
	}
	for _, o := range owners {
		d.byID[o.ID] = o
		d.byUsername[o.Username] = o.ID
	}
	return d
}

// Get returns the owner with the given id or ErrNotFound.
func (d *OwnerDirectory) Get(id string) (model.Owner, error) {
	o, ok := d.byID[id]
	if !ok {
		return model.Owner{}, fmt.Errorf("owner %q: %w", id, ErrNotFound)
	}
	return o, nil
}

// GetByUsername returns the owner with the given login name or
// ErrNotFound.
func (d *OwnerDirectory) GetByUsername(username string) (model.Owner, error) {
	id, ok := d.byUsername[username]
	if !ok {
		return model.Owner{}, fmt.Errorf("owner %q: %w", username, ErrNotFound)
	}
	return d.byID[id], nil
}

// OwnerListings resolves the owner's listing ids against the listing
// store, in the order the owner references them. Ids that no longer
// resolve (the listing was deleted) are skipped rather than treated
// as an error, so a stale reference degrades to a shorter result.
func (d *OwnerDirectory) OwnerListings(ownerID string) ([]model.Listing, error) {
	o, err := d.Get(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Listing, 0, len(o.Listings))
	for _, id := range o.Listings {
		l, err := d.listings.Get(id)
		if err != nil {
			continue // dangling reference
		}
		out = append(out, l)
	}
	return out, nil
}

// Owns reports whether the owner references the given listing id.
// Unknown owners own nothing.
func (d *OwnerDirectory) Owns(ownerID, listingID string) bool {
	o, ok := d.byID[ownerID]
	if !ok {
		return false
	}
	for _, id := range o.Listings {
		if id == listingID {
			return true
		}
	}
	return false
}
