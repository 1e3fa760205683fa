package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wayfarerhq/footprints/internal/repository"
)

func TestCollectionToggleFlipsState(t *testing.T) {
	db := newTestDB(t)
	footprints := repository.NewFootprintRepo(db)
	collections := repository.NewCollectionRepo(db)
	ctx := context.Background()
	ids := seedUsers(t, db, "alice", "bob")
	locID := seedLocation(t, db, "Eiffel Tower", "attraction")

	fpID, err := footprints.Create(ctx, ids[0], "entry", nil, locID)
	require.NoError(t, err)

	collected, err := collections.IsCollected(ctx, ids[1], fpID)
	require.NoError(t, err)
	require.False(t, collected)

	collected, err = collections.Toggle(ctx, ids[1], fpID)
	require.NoError(t, err)
	require.True(t, collected)

	collected, err = collections.IsCollected(ctx, ids[1], fpID)
	require.NoError(t, err)
	require.True(t, collected)

	collected, err = collections.Toggle(ctx, ids[1], fpID)
	require.NoError(t, err)
	require.False(t, collected)
	require.Equal(t, 0, countRows(t, db, "collections"))
}

func TestCollectionListByUser(t *testing.T) {
	db := newTestDB(t)
	footprints := repository.NewFootprintRepo(db)
	collections := repository.NewCollectionRepo(db)
	ctx := context.Background()
	ids := seedUsers(t, db, "alice", "bob")
	locID := seedLocation(t, db, "Eiffel Tower", "attraction")

	fpID, err := footprints.Create(ctx, ids[0], "entry", nil, locID)
	require.NoError(t, err)

	_, err = collections.Toggle(ctx, ids[1], fpID)
	require.NoError(t, err)

	items, err := collections.ListByUser(ctx, ids[1])
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, fpID, items[0].FootprintID)
	require.Equal(t, "entry", items[0].Title)
	require.Equal(t, "Eiffel Tower", items[0].LocationName)

	items, err = collections.ListByUser(ctx, ids[0])
	require.NoError(t, err)
	require.Empty(t, items, "the author has not collected anything")
}
