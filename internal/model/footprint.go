package model

// Footprint is a journal entry authored by a user at a specific
// location. CreatedAt is stamped by the server at creation time and
// stored as a UTC DATETIME string (YYYY-MM-DD HH:MM:SS). ImageURL
// is a generated placeholder token, not a real upload.
//
// Fields:
//  ID         – primary key identifier.
//  Title      – entry title (required).
//  Content    – entry body (nil when empty).
//  ImageURL   – placeholder image token.
//  CreatedAt  – server-assigned creation timestamp.
//  UserID     – author (references users).
//  LocationID – where the entry was written (references locations).
type Footprint struct {
	ID         int64   `json:"footprint_id"`      // footprints.footprint_id
	Title      string  `json:"title"`             // footprints.title
	Content    *string `json:"content,omitempty"` // footprints.content (nullable)
	ImageURL   string  `json:"image_url"`         // footprints.image_url
	CreatedAt  string  `json:"created_at"`        // footprints.created_at
	UserID     int64   `json:"user_id"`           // footprints.user_id
	LocationID int64   `json:"location_id"`       // footprints.location_id
}

// FootprintDetail joins a footprint with its author username and
// location name/type for list, search and detail views.
type FootprintDetail struct {
	Footprint
	Username     string `json:"username"`
	LocationName string `json:"location_name"`
	LocationType string `json:"location_type"`
}
