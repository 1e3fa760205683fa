package model

// Collection marks a footprint as a favorite of a user. The
// (user_id, footprint_id) pair is the primary key, so a footprint
// can be collected at most once per user; toggling removes the row.
type Collection struct {
	UserID      int64  `json:"user_id"`      // collections.user_id
	FootprintID int64  `json:"footprint_id"` // collections.footprint_id
	CreatedAt   string `json:"created_at"`   // collections.created_at
}

// CollectionDetail joins a collection row with the collected
// footprint and its location for a user's collection list.
type CollectionDetail struct {
	FootprintID  int64  `json:"footprint_id"`
	Title        string `json:"title"`
	ImageURL     string `json:"image_url"`
	LocationName string `json:"location_name"`
	CollectedAt  string `json:"collected_at"`
}
