package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wayfarerhq/footprints/internal/repository"
)

func TestLocationCreateValidatesType(t *testing.T) {
	db := newTestDB(t)
	locations := repository.NewLocationRepo(db)
	ctx := context.Background()

	_, err := locations.Create(ctx, "Eiffel Tower", nil, "volcano")
	require.ErrorIs(t, err, repository.ErrInvalidLocationType)
	require.Equal(t, 0, countRows(t, db, "locations"), "invalid type must be rejected before the write")
}

func TestLocationCreateDuplicateNameConflicts(t *testing.T) {
	db := newTestDB(t)
	locations := repository.NewLocationRepo(db)
	ctx := context.Background()

	_, err := locations.Create(ctx, "Eiffel Tower", nil, "attraction")
	require.NoError(t, err)

	_, err = locations.Create(ctx, "Eiffel Tower", nil, "restaurant")
	var ce *repository.ConflictError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "locations.name", ce.Constraint)
	require.Equal(t, 1, countRows(t, db, "locations"))
}

func TestLocationListRoundTrip(t *testing.T) {
	db := newTestDB(t)
	locations := repository.NewLocationRepo(db)
	ctx := context.Background()

	addr := "Champ de Mars, Paris"
	towerID, err := locations.Create(ctx, "Eiffel Tower", &addr, "attraction")
	require.NoError(t, err)
	_, err = locations.Create(ctx, "Katz's Delicatessen", nil, "restaurant")
	require.NoError(t, err)

	all, err := locations.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, towerID, all[0].ID)
	require.Equal(t, "Eiffel Tower", all[0].Name)
	require.Equal(t, "Katz's Delicatessen", all[1].Name)
}
