package repository_test

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wayfarerhq/footprints/internal/repository"
)

func TestFootprintCreateListRoundTrip(t *testing.T) {
	db := newTestDB(t)
	footprints := repository.NewFootprintRepo(db)
	ctx := context.Background()
	ids := seedUsers(t, db, "alice")
	locID := seedLocation(t, db, "Eiffel Tower", "attraction")

	content := "Climbed to the top."
	fpID, err := footprints.Create(ctx, ids[0], "Paris day one", &content, locID)
	require.NoError(t, err)

	all, err := footprints.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, fpID, all[0].ID)
	require.Equal(t, "Paris day one", all[0].Title)
	require.Equal(t, "alice", all[0].Username)
	require.Equal(t, "Eiffel Tower", all[0].LocationName)
	require.Equal(t, "attraction", all[0].LocationType)
	require.NotEmpty(t, all[0].CreatedAt, "creation time is server-assigned")
	require.True(t, strings.HasPrefix(all[0].ImageURL, "/static/placeholders/"))
}

func TestFootprintListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	footprints := repository.NewFootprintRepo(db)
	ctx := context.Background()
	ids := seedUsers(t, db, "alice")
	locID := seedLocation(t, db, "Eiffel Tower", "attraction")

	firstID, err := footprints.Create(ctx, ids[0], "first", nil, locID)
	require.NoError(t, err)
	secondID, err := footprints.Create(ctx, ids[0], "second", nil, locID)
	require.NoError(t, err)

	all, err := footprints.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, secondID, all[0].ID)
	require.Equal(t, firstID, all[1].ID)
}

func TestFootprintSearchFilters(t *testing.T) {
	db := newTestDB(t)
	footprints := repository.NewFootprintRepo(db)
	ctx := context.Background()
	ids := seedUsers(t, db, "alice", "bob")
	tower := seedLocation(t, db, "Eiffel Tower", "attraction")
	deli := seedLocation(t, db, "Katz's Delicatessen", "restaurant")

	_, err := footprints.Create(ctx, ids[0], "tower visit", nil, tower)
	require.NoError(t, err)
	_, err = footprints.Create(ctx, ids[1], "lunch", nil, deli)
	require.NoError(t, err)

	// No filters returns everything.
	results, err := footprints.Search(ctx, repository.FootprintSearchQuery{})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Author substring.
	results, err = footprints.Search(ctx, repository.FootprintSearchQuery{Username: "ali"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "alice", results[0].Username)

	// Location name substring.
	results, err = footprints.Search(ctx, repository.FootprintSearchQuery{LocationName: "Tower"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "Eiffel Tower", results[0].LocationName)

	// Type set membership.
	results, err = footprints.Search(ctx, repository.FootprintSearchQuery{
		LocationTypes: []string{"restaurant", "transport"},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "restaurant", results[0].LocationType)

	// Conjunction: both predicates must hold.
	results, err = footprints.Search(ctx, repository.FootprintSearchQuery{
		Username:      "alice",
		LocationTypes: []string{"restaurant"},
	})
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestFootprintSearchCreatedRangeInclusive(t *testing.T) {
	db := newTestDB(t)
	footprints := repository.NewFootprintRepo(db)
	ctx := context.Background()
	ids := seedUsers(t, db, "alice")
	locID := seedLocation(t, db, "Eiffel Tower", "attraction")

	_, err := footprints.Create(ctx, ids[0], "entry", nil, locID)
	require.NoError(t, err)

	all, err := footprints.List(ctx)
	require.NoError(t, err)
	stamp := all[0].CreatedAt

	// Bounds equal to the stored timestamp still match.
	results, err := footprints.Search(ctx, repository.FootprintSearchQuery{
		CreatedAfter:  stamp,
		CreatedBefore: stamp,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)

	// Only one bound supplied leaves the other side open.
	results, err = footprints.Search(ctx, repository.FootprintSearchQuery{CreatedAfter: "2000-01-01 00:00:00"})
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestFootprintDetailAndUpdate(t *testing.T) {
	db := newTestDB(t)
	footprints := repository.NewFootprintRepo(db)
	ctx := context.Background()
	ids := seedUsers(t, db, "alice")
	tower := seedLocation(t, db, "Eiffel Tower", "attraction")
	deli := seedLocation(t, db, "Katz's Delicatessen", "restaurant")

	fpID, err := footprints.Create(ctx, ids[0], "before", nil, tower)
	require.NoError(t, err)

	newContent := "rewritten"
	affected, err := footprints.Update(ctx, fpID, "after", &newContent, deli)
	require.NoError(t, err)
	require.True(t, affected)

	detail, err := footprints.GetDetail(ctx, fpID)
	require.NoError(t, err)
	require.Equal(t, "after", detail.Title)
	require.NotNil(t, detail.Content)
	require.Equal(t, "rewritten", *detail.Content)
	require.Equal(t, "Katz's Delicatessen", detail.LocationName)

	affected, err = footprints.Update(ctx, 999, "x", nil, tower)
	require.NoError(t, err)
	require.False(t, affected)

	_, err = footprints.GetDetail(ctx, 999)
	require.ErrorIs(t, err, sql.ErrNoRows)
}
