package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeland-scout/pg-finder/internal/model"
)

func TestForListingReturnsSeededMatchesInOrder(t *testing.T) {
	g := NewInteractionLog(model.SeedInteractions())

	got := g.ForListing("1")
	require.Len(t, got, 2)
	assert.Equal(t, "Ankit Verma", got[0].UserName)
	assert.Equal(t, "Sneha Patel", got[1].UserName)
	assert.True(t, got[0].LikedAt.Before(got[1].LikedAt))
}

func TestForListingEmptyIsNotAnError(t *testing.T) {
	g := NewInteractionLog(model.SeedInteractions())
	got := g.ForListing("no-such-listing")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAppendShowsUpAtTheEnd(t *testing.T) {
	g := NewInteractionLog(model.SeedInteractions())
	g.Append(model.Interaction{
		ID:        "7",
		UserName:  "New User",
		ListingID: "1",
		LikedAt:   time.Now().UTC(),
	})

	got := g.ForListing("1")
	require.Len(t, got, 3)
	assert.Equal(t, "7", got[2].ID)
	assert.Equal(t, 7, g.Len())
}
