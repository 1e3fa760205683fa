package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wayfarerhq/footprints/internal/repository"
)

func TestUserCreateAndList(t *testing.T) {
	db := newTestDB(t)
	users := repository.NewUserRepo(db)
	ctx := context.Background()

	aliceID, err := users.Create(ctx, "alice", "alice@example.com")
	require.NoError(t, err)
	bobID, err := users.Create(ctx, "bob", "bob@example.com")
	require.NoError(t, err)
	require.Greater(t, bobID, aliceID)

	all, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "alice", all[0].Username, "list must keep insertion order")
	require.Equal(t, "bob", all[1].Username)
}

func TestUserCreateConflictLeavesCollectionUnchanged(t *testing.T) {
	db := newTestDB(t)
	users := repository.NewUserRepo(db)
	ctx := context.Background()

	_, err := users.Create(ctx, "alice", "alice@example.com")
	require.NoError(t, err)

	_, err = users.Create(ctx, "alice", "other@example.com")
	var ce *repository.ConflictError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "users.username", ce.Constraint)

	_, err = users.Create(ctx, "someone", "alice@example.com")
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "users.email", ce.Constraint)

	require.Equal(t, 1, countRows(t, db, "users"), "rejected creates must not write")
}

func TestUserDeleteReportsAffected(t *testing.T) {
	db := newTestDB(t)
	users := repository.NewUserRepo(db)
	ctx := context.Background()

	id, err := users.Create(ctx, "alice", "alice@example.com")
	require.NoError(t, err)

	affected, err := users.Delete(ctx, id)
	require.NoError(t, err)
	require.True(t, affected)

	affected, err = users.Delete(ctx, id)
	require.NoError(t, err, "unknown id is not an error")
	require.False(t, affected)
}

func TestUserDeleteCascadesThroughTrips(t *testing.T) {
	db := newTestDB(t)
	users := repository.NewUserRepo(db)
	trips := repository.NewTripRepo(db)
	ctx := context.Background()

	aliceID, err := users.Create(ctx, "alice", "alice@example.com")
	require.NoError(t, err)
	bobID, err := users.Create(ctx, "bob", "bob@example.com")
	require.NoError(t, err)

	_, err = trips.Create(ctx, []int64{aliceID, bobID}, "2025-05-01", "2025-05-05", nil)
	require.NoError(t, err)
	_, err = trips.Create(ctx, []int64{aliceID}, "2025-06-01", "2025-06-03", nil)
	require.NoError(t, err)

	// Removing alice drops her participant rows; the solo trip loses
	// its last participant and is removed by the trigger, while the
	// shared trip survives with bob.
	affected, err := users.Delete(ctx, aliceID)
	require.NoError(t, err)
	require.True(t, affected)

	all, err := trips.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "bob", all[0].Participants)

	affected, err = users.Delete(ctx, bobID)
	require.NoError(t, err)
	require.True(t, affected)

	all, err = trips.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all, "trip with zero participants must be removed")
}

func TestIsConflictHelper(t *testing.T) {
	require.True(t, repository.IsConflict(&repository.ConflictError{Constraint: "users.email"}))
	require.False(t, repository.IsConflict(errors.New("boom")))
}
