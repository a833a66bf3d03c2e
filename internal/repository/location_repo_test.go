package repository

import (
	"context"
	"testing"

	"fitsync/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationRepository_HoursRoundTrip(t *testing.T) {
	repo := NewLocationRepository(newTestDB(t))
	ctx := context.Background()

	hours := domain.OperatingHours{
		"monday":   {Open: "06:00", Close: "22:00"},
		"saturday": {Open: "08:00", Close: "18:00"},
	}
	loc := &domain.Location{
		ID:      "loc-1",
		Name:    "Downtown",
		Address: "12 Main St",
		Hours:   hours,
	}
	require.NoError(t, repo.Upsert(ctx, loc))

	got, err := repo.Get(ctx, "loc-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Downtown", got.Name)
	assert.Equal(t, "12 Main St", got.Address)
	assert.Equal(t, hours, got.Hours)

	// The restored hours feed the conflict checker unchanged.
	open, close, ok := got.Hours.WindowFor(mondayAt(12, 0))
	require.True(t, ok)
	assert.True(t, open.Equal(mondayAt(6, 0)))
	assert.True(t, close.Equal(mondayAt(22, 0)))
}

func TestLocationRepository_EmptyHoursAndMissingRow(t *testing.T) {
	repo := NewLocationRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &domain.Location{ID: "loc-1", Name: "Pop-up", Hours: domain.OperatingHours{}}))

	got, err := repo.Get(ctx, "loc-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Hours)
	assert.Empty(t, got.Address)

	missing, err := repo.Get(ctx, "ghost")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLocationRepository_UpsertReplacesHours(t *testing.T) {
	repo := NewLocationRepository(newTestDB(t))
	ctx := context.Background()

	loc := &domain.Location{
		ID:    "loc-1",
		Name:  "Downtown",
		Hours: domain.OperatingHours{"monday": {Open: "06:00", Close: "22:00"}},
	}
	require.NoError(t, repo.Upsert(ctx, loc))

	loc.Hours = domain.OperatingHours{"monday": {Open: "09:00", Close: "17:00"}}
	require.NoError(t, repo.Upsert(ctx, loc))

	got, err := repo.Get(ctx, "loc-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "09:00", got.Hours["monday"].Open)
	assert.Equal(t, "17:00", got.Hours["monday"].Close)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
