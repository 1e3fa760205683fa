package model

// Trip represents a dated journey shared by one or more users.
// Days are stored as ISO dates (YYYY-MM-DD); the storage layer
// enforces end_day > start_day. A trip exists only while it has at
// least one participant — the clean_empty_trips trigger removes a
// trip whose last participant row is deleted.
//
// Fields:
//  ID       – primary key identifier.
//  StartDay – first day of the trip (inclusive).
//  EndDay   – last day of the trip (must be after StartDay).
type Trip struct {
	ID       int64  `json:"trip_id"`   // trips.trip_id
	StartDay string `json:"start_day"` // trips.start_day
	EndDay   string `json:"end_day"`   // trips.end_day
}

// TripSummary is a trip row aggregated for list views. Participants
// and Locations are comma-joined name lists computed per trip by
// correlated aggregation; both are empty strings when no related
// rows exist.
type TripSummary struct {
	ID           int64  `json:"trip_id"`
	StartDay     string `json:"start_day"`
	EndDay       string `json:"end_day"`
	Participants string `json:"participants"`
	Locations    string `json:"locations"`
}

// TripDetail is a trip with its full participant and visited
// location records attached. Returned by trip search so callers can
// render the matched trips without further lookups.
type TripDetail struct {
	ID           int64      `json:"trip_id"`
	StartDay     string     `json:"start_day"`
	EndDay       string     `json:"end_day"`
	Participants []User     `json:"participants"`
	Locations    []Location `json:"locations"`
}
