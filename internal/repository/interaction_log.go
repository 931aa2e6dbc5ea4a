package repository

import (
	"sync"

	"github.com/homeland-scout/pg-finder/internal/model"
)

// InteractionLog is an append-only record of end-user interest
// events. Appends come from the interest consumer, so the log takes
// its own lock rather than piggybacking on the listing store's.
type InteractionLog struct {
	mu      sync.RWMutex
	entries []model.Interaction
}

// NewInteractionLog builds a log pre-populated with seed, preserving
// order.
func NewInteractionLog(seed []model.Interaction) *InteractionLog {
	return &InteractionLog{entries: append([]model.Interaction(nil), seed...)}
}

// ForListing returns the interactions referencing the given listing
// id, in insertion order. No matches yields an empty slice, not an
// error: interest history legitimately starts empty, and it survives
// the deletion of the listing it points at.
func (g *InteractionLog) ForListing(listingID string) []model.Interaction {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]model.Interaction, 0)
	for _, in := range g.entries {
		if in.ListingID == listingID {
			out = append(out, in)
		}
	}
	return out
}

// Append records a new interaction at the end of the log.
func (g *InteractionLog) Append(in model.Interaction) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.entries = append(g.entries, in)
}

// Len reports the number of recorded interactions.
func (g *InteractionLog) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.entries)
}
