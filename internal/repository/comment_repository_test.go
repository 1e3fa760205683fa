package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wayfarerhq/footprints/internal/repository"
)

func TestCommentCreateListWithThreading(t *testing.T) {
	db := newTestDB(t)
	footprints := repository.NewFootprintRepo(db)
	comments := repository.NewCommentRepo(db)
	ctx := context.Background()
	ids := seedUsers(t, db, "alice", "bob")
	locID := seedLocation(t, db, "Eiffel Tower", "attraction")

	fpID, err := footprints.Create(ctx, ids[0], "entry", nil, locID)
	require.NoError(t, err)

	topID, err := comments.Create(ctx, fpID, ids[1], "nice view!", nil)
	require.NoError(t, err)
	replyID, err := comments.Create(ctx, fpID, ids[0], "thanks", &topID)
	require.NoError(t, err)

	all, err := comments.ListByFootprint(ctx, fpID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, topID, all[0].ID, "chronological order")
	require.Equal(t, "bob", all[0].Username)
	require.Nil(t, all[0].ParentID)
	require.Equal(t, replyID, all[1].ID)
	require.NotNil(t, all[1].ParentID)
	require.Equal(t, topID, *all[1].ParentID)
}

func TestCommentsCascadeWithFootprint(t *testing.T) {
	db := newTestDB(t)
	footprints := repository.NewFootprintRepo(db)
	comments := repository.NewCommentRepo(db)
	ctx := context.Background()
	ids := seedUsers(t, db, "alice")
	locID := seedLocation(t, db, "Eiffel Tower", "attraction")

	fpID, err := footprints.Create(ctx, ids[0], "entry", nil, locID)
	require.NoError(t, err)
	_, err = comments.Create(ctx, fpID, ids[0], "note to self", nil)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, "DELETE FROM footprints WHERE footprint_id = ?", fpID)
	require.NoError(t, err)
	require.Equal(t, 0, countRows(t, db, "comments"))
}
