package repository

import (
	"context"
	"strings"

	"github.com/wayfarerhq/footprints/internal/model"
)

// TripSearchQuery defines the filters for trip search. ParticipantIDs
// is required in practice: with zero ids the count match produces no
// candidates, so results are empty by construction. Date bounds are
// ISO dates, inclusive, and only supplied bounds are applied.
type TripSearchQuery struct {
	ParticipantIDs []int64
	StartAfter     string
	StartBefore    string
	EndAfter       string
	EndBefore      string
	LocationIDs    []int64
}

// Search narrows a candidate trip-id set in stages and returns the
// surviving trips with full participant and location details:
//
//  1. trips containing ALL given participant ids (the trip may have
//     additional participants — superset match, implemented by
//     comparing the matched-distinct count to the given set's size),
//  2. intersected with the same match against visited locations when
//     location ids are given,
//  3. filtered by the supplied inclusive date-range bounds.
func (r *TripRepo) Search(ctx context.Context, q TripSearchQuery) ([]model.TripDetail, error) {
	candidates, err := r.matchAllIDs(ctx, "trip_participants", "user_id", dedupe(q.ParticipantIDs))
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []model.TripDetail{}, nil
	}

	if len(q.LocationIDs) > 0 {
		byLocation, err := r.matchAllIDs(ctx, "trip_locations", "location_id", dedupe(q.LocationIDs))
		if err != nil {
			return nil, err
		}
		candidates = intersect(candidates, byLocation)
		if len(candidates) == 0 {
			return []model.TripDetail{}, nil
		}
	}

	details, err := r.fetchTripsFiltered(ctx, candidates, q)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return details, nil
	}
	if err := r.attachParticipants(ctx, details); err != nil {
		return nil, err
	}
	if err := r.attachLocations(ctx, details); err != nil {
		return nil, err
	}
	return details, nil
}

// matchAllIDs returns the trip ids whose association rows cover every
// id in the given set. The HAVING clause compares the number of
// distinct matched ids against the size of the set, so a trip with
// extra associations still matches.
func (r *TripRepo) matchAllIDs(ctx context.Context, table, column string, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	placeholders := make([]string, 0, len(ids))
	args := make([]interface{}, 0, len(ids)+1)
	for _, id := range ids {
		placeholders = append(placeholders, "?")
		args = append(args, id)
	}
	args = append(args, len(ids))
	query := "SELECT trip_id FROM " + table +
		" WHERE " + column + " IN (" + strings.Join(placeholders, ",") + ")" +
		" GROUP BY trip_id" +
		" HAVING COUNT(DISTINCT " + column + ") = ?"
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// fetchTripsFiltered loads the candidate trip rows that satisfy the
// supplied date bounds, ordered by start day descending.
func (r *TripRepo) fetchTripsFiltered(ctx context.Context, tripIDs []int64, q TripSearchQuery) ([]model.TripDetail, error) {
	placeholders := make([]string, 0, len(tripIDs))
	args := make([]interface{}, 0, len(tripIDs)+4)
	for _, id := range tripIDs {
		placeholders = append(placeholders, "?")
		args = append(args, id)
	}
	where := []string{"trip_id IN (" + strings.Join(placeholders, ",") + ")"}
	if q.StartAfter != "" {
		where = append(where, "start_day >= ?")
		args = append(args, q.StartAfter)
	}
	if q.StartBefore != "" {
		where = append(where, "start_day <= ?")
		args = append(args, q.StartBefore)
	}
	if q.EndAfter != "" {
		where = append(where, "end_day >= ?")
		args = append(args, q.EndAfter)
	}
	if q.EndBefore != "" {
		where = append(where, "end_day <= ?")
		args = append(args, q.EndBefore)
	}
	query := `SELECT trip_id, start_day, end_day FROM trips
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY start_day DESC`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.TripDetail, 0)
	for rows.Next() {
		var d model.TripDetail
		if err := rows.Scan(&d.ID, &d.StartDay, &d.EndDay); err != nil {
			return nil, err
		}
		d.Participants = []model.User{}
		d.Locations = []model.Location{}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// attachParticipants populates the participant list of every trip in
// details with a single IN-list query.
func (r *TripRepo) attachParticipants(ctx context.Context, details []model.TripDetail) error {
	ids := make([]interface{}, 0, len(details))
	placeholders := make([]string, 0, len(details))
	index := make(map[int64]int, len(details))
	for i, d := range details {
		ids = append(ids, d.ID)
		placeholders = append(placeholders, "?")
		index[d.ID] = i
	}
	query := `SELECT tp.trip_id, u.user_id, u.username, u.email
		FROM trip_participants tp
		JOIN users u ON u.user_id = tp.user_id
		WHERE tp.trip_id IN (` + strings.Join(placeholders, ",") + `)
		ORDER BY tp.trip_id, u.user_id`
	rows, err := r.db.QueryContext(ctx, query, ids...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var tripID int64
		var u model.User
		if err := rows.Scan(&tripID, &u.ID, &u.Username, &u.Email); err != nil {
			return err
		}
		i, ok := index[tripID]
		if !ok {
			continue
		}
		details[i].Participants = append(details[i].Participants, u)
	}
	return rows.Err()
}

// attachLocations populates the visited-location list of every trip
// in details with a single IN-list query.
func (r *TripRepo) attachLocations(ctx context.Context, details []model.TripDetail) error {
	ids := make([]interface{}, 0, len(details))
	placeholders := make([]string, 0, len(details))
	index := make(map[int64]int, len(details))
	for i, d := range details {
		ids = append(ids, d.ID)
		placeholders = append(placeholders, "?")
		index[d.ID] = i
	}
	query := `SELECT tl.trip_id, l.location_id, l.name, l.address, l.type
		FROM trip_locations tl
		JOIN locations l ON l.location_id = tl.location_id
		WHERE tl.trip_id IN (` + strings.Join(placeholders, ",") + `)
		ORDER BY tl.trip_id, l.location_id`
	rows, err := r.db.QueryContext(ctx, query, ids...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var tripID int64
		var l model.Location
		if err := rows.Scan(&tripID, &l.ID, &l.Name, &l.Address, &l.Type); err != nil {
			return err
		}
		i, ok := index[tripID]
		if !ok {
			continue
		}
		details[i].Locations = append(details[i].Locations, l)
	}
	return rows.Err()
}

// intersect keeps the ids of a that also appear in b, preserving a's
// order.
func intersect(a, b []int64) []int64 {
	in := make(map[int64]struct{}, len(b))
	for _, id := range b {
		in[id] = struct{}{}
	}
	out := make([]int64, 0, len(a))
	for _, id := range a {
		if _, ok := in[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
