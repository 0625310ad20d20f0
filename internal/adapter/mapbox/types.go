package mapbox

// Mapbox Geocoding API v5 response types.

type response struct {
	Features []feature `json:"features"`
}

// errorBody is the shape Mapbox uses for non-200 responses.
type errorBody struct {
	Message string `json:"message"`
}

type feature struct {
	ID         string         `json:"id"`
	PlaceType  []string       `json:"place_type"`
	Text       string         `json:"text"`
	PlaceName  string         `json:"place_name"`
	Address    string         `json:"address"` // house number, place_type "address" only
	Properties properties     `json:"properties"`
	Geometry   geometry       `json:"geometry"`
	Context    []contextEntry `json:"context"`
}

type properties struct {
	Address string `json:"address"` // street line, some POIs only
}

type geometry struct {
	Coordinates []float64 `json:"coordinates"` // [lng, lat]
}

// contextEntry is one level of the enclosing location hierarchy. The field
// kind is the id's prefix before the first dot: country, region, district,
// place, or postcode.
type contextEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	ShortCode string `json:"short_code"`
}
