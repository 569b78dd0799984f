package overpass

// Center is the computed center point returned for way and relation
// geometries when the query asks for "out center".
type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Element is one raw result from the Overpass API. Lat/Lon are set only
// for nodes; ways and relations carry Center instead. Pointers
// distinguish "absent" from a legitimate zero coordinate.
type Element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *Center           `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

// Tag returns the value for key, or "" when absent.
func (e Element) Tag(key string) string {
	return e.Tags[key]
}

// response is the Overpass API response envelope.
type response struct {
	Elements []Element `json:"elements"`
}
