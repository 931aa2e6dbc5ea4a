package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeland-scout/pg-finder/internal/model"
)

func TestOwnerListingsResolvesInReferenceOrder(t *testing.T) {
	listings := NewListingStore(model.SeedListings())
	dir := NewOwnerDirectory(model.SeedOwners(), listings)

	got, err := dir.OwnerListings("owner1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}

func TestOwnerListingsSkipsDanglingReferences(t *testing.T) {
	listings := NewListingStore([]model.Listing{model.SeedListings()[0]}) // only id "1"
	dir := NewOwnerDirectory([]model.Owner{
		{ID: "o", Username: "o", Listings: []string{"1", "missing"}},
	}, listings)

	got, err := dir.OwnerListings("o")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestOwnerListingsAfterAdminDelete(t *testing.T) {
	listings := NewListingStore(model.SeedListings())
	dir := NewOwnerDirectory(model.SeedOwners(), listings)

	require.NoError(t, listings.Remove("2"))

	got, err := dir.OwnerListings("owner1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestOwnerListingsUnknownOwner(t *testing.T) {
	listings := NewListingStore(nil)
	dir := NewOwnerDirectory(nil, listings)
	_, err := dir.OwnerListings("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByUsername(t *testing.T) {
	listings := NewListingStore(nil)
	dir := NewOwnerDirectory(model.SeedOwners(), listings)

	o, err := dir.GetByUsername("owner2")
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", o.Name)

	_, err = dir.GetByUsername("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOwns(t *testing.T) {
	listings := NewListingStore(nil)
	dir := NewOwnerDirectory(model.SeedOwners(), listings)

	assert.True(t, dir.Owns("owner1", "2"))
	assert.False(t, dir.Owns("owner1", "3"))
	assert.False(t, dir.Owns("ghost", "1"))
}
