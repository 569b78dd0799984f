package types

// Geometry kinds reported by the upstream source. The kind decides how a
// coordinate is resolved: nodes carry their own lat/lon, ways and relations
// carry a computed center.
const (
	GeometryNode     = "node"
	GeometryWay      = "way"
	GeometryRelation = "relation"
)

// Coordinates is a WGS84 point. Both fields are required; a place without
// resolvable coordinates is never persisted.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Address holds the structured address of a place. Every field is
// independently optional and empty when the source has no tag for it.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
	Full   string `json:"full"`
}

// Place is one real-world point of interest, normalized from a raw
// upstream element. ID is "{osm_type}_{osm_id}" and is the de-duplication
// key: normalizing the same upstream element twice yields the same ID.
type Place struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Address      Address     `json:"address"`
	Phone        string      `json:"phone"`
	Website      string      `json:"website"`
	Email        string      `json:"email"`
	Coordinates  Coordinates `json:"coordinates"`
	Denomination string      `json:"denomination"`
	OpeningHours string      `json:"opening_hours"`
	OSMType      string      `json:"osm_type"`
	OSMID        int64       `json:"osm_id"`
}
