package repository

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/homeland-scout/pg-finder/internal/model"
)

// ListingStore is the single source of truth for listing records. It
// keeps insertion order and hands out copies, so callers can never
// mutate the store through a returned slice. Access follows an
// exclusive-write / shared-read discipline: every read sees a
// consistent snapshot and a removal is visible atomically to any
// later join.
type ListingStore struct {
	mu      sync.RWMutex
	entries []model.Listing
	index   map[string]int // id -> position in entries
}

// NewListingStore builds a store pre-populated with seed, preserving
// the seed's order.
func NewListingStore(seed []model.Listing) *ListingStore {
	s := &ListingStore{index: make(map[string]int, len(seed))}
	for _, l := range seed {
		s.index[l.ID] = len(s.entries)
		s.entries = append(s.entries, l.Clone())
	}
	return s
}

// All returns a copy of the full collection in insertion order.
func (s *ListingStore) All() []model.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Listing, 0, len(s.entries))
	for _, l := range s.entries {
		out = append(out, l.Clone())
	}
	return out
}

// Get returns the listing with the given id or ErrNotFound.
func (s *ListingStore) Get(id string) (model.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return model.Listing{}, fmt.Errorf("listing %q: %w", id, ErrNotFound)
	}
	return s.entries[i].Clone(), nil
}

// Add validates and appends a listing. When l.ID is empty a fresh id
// derived from the creation timestamp is assigned. The stored record
// is returned so callers see the assigned id.
func (s *ListingStore) Add(l model.Listing) (model.Listing, error) {
	if err := validateListing(l); err != nil {
		return model.Listing{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if l.ID == "" {
		l.ID = s.nextIDLocked()
	} else if _, exists := s.index[l.ID]; exists {
		return model.Listing{}, fmt.Errorf("duplicate listing id %q: %w", l.ID, ErrValidation)
	}
	l = l.Clone()
	s.index[l.ID] = len(s.entries)
	s.entries = append(s.entries, l)
	return l.Clone(), nil
}

// Update merges patch over the existing record. Unset patch fields
// are left untouched; an empty patch is a no-op. The merged record
// must still validate.
func (s *ListingStore) Update(id string, patch model.ListingPatch) (model.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return model.Listing{}, fmt.Errorf("listing %q: %w", id, ErrNotFound)
	}
	merged := patch.Apply(s.entries[i].Clone())
	merged.ID = id // the identifier is not patchable
	if err := validateListing(merged); err != nil {
		return model.Listing{}, err
	}
	s.entries[i] = merged
	return merged.Clone(), nil
}

// Remove deletes the listing with the given id. Removal is not
// idempotent: a second call for the same id returns ErrNotFound.
func (s *ListingStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("listing %q: %w", id, ErrNotFound)
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.entries); j++ {
		s.index[s.entries[j].ID] = j
	}
	return nil
}

// Len reports the number of stored listings.
func (s *ListingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// nextIDLocked derives an id from the current unix-millisecond
// timestamp, bumping until it is unique. Callers must hold mu.
func (s *ListingStore) nextIDLocked() string {
	n := time.Now().UnixMilli()
	for {
		id := strconv.FormatInt(n, 10)
		if _, exists := s.index[id]; !exists {
			return id
		}
		n++
	}
}

// validateListing enforces the record invariants: required fields
// present, rent positive, rating in [0,5], enums within their closed
// sets, location one of the named areas.
func validateListing(l model.Listing) error {
	switch {
	case l.Name == "":
		return fmt.Errorf("name is required: %w", ErrValidation)
	case l.MonthlyRent <= 0:
		return fmt.Errorf("monthly rent must be positive: %w", ErrValidation)
	case !l.GenderPreference.Valid():
		return fmt.Errorf("gender preference %q is not allowed: %w", l.GenderPreference, ErrValidation)
	case !l.RoomType.Valid():
		return fmt.Errorf("room type %q is not allowed: %w", l.RoomType, ErrValidation)
	case l.Location == "":
		return fmt.Errorf("location is required: %w", ErrValidation)
	case !model.ValidLocation(l.Location):
		return fmt.Errorf("location %q is not a known area: %w", l.Location, ErrValidation)
	case l.Area == "":
		return fmt.Errorf("area is required: %w", ErrValidation)
	case l.PhoneNumber == "":
		return fmt.Errorf("phone number is required: %w", ErrValidation)
	case l.Description == "":
		return fmt.Errorf("description is required: %w", ErrValidation)
	case l.Rating < 0 || l.Rating > 5:
		return fmt.Errorf("rating %v outside [0,5]: %w", l.Rating, ErrValidation)
	case !l.Availability.Valid():
		return fmt.Errorf("availability %q is not allowed: %w", l.Availability, ErrValidation)
	}
	return nil
}
