package model

// Location types form a closed enumeration validated at write time.
const (
	LocationTypeAttraction = "attraction"
	LocationTypeRestaurant = "restaurant"
	LocationTypeTransport  = "transport"
)

// LocationTypes lists every valid location type in display order.
var LocationTypes = []string{
	LocationTypeAttraction,
	LocationTypeRestaurant,
	LocationTypeTransport,
}

// ValidLocationType reports whether t is a member of the closed
// location type enumeration.
func ValidLocationType(t string) bool {
	for _, v := range LocationTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Location represents a visitable place referenced by trips and
// footprints. The name is unique; the address may be absent.
//
// Fields:
//  ID      – primary key identifier.
//  Name    – unique place name.
//  Address – optional street address (nil when unknown).
//  Type    – one of the LocationType constants.
type Location struct {
	ID      int64   `json:"location_id"`       // locations.location_id
	Name    string  `json:"name"`              // locations.name
	Address *string `json:"address,omitempty"` // locations.address (nullable)
	Type    string  `json:"type"`              // locations.type
}
