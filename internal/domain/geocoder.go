package domain

import "context"

// SearchOptions narrows a place search.
type SearchOptions struct {
	// Filter restricts results to a comma-separated list of provider place
	// kinds (country, region, postcode, district, place, locality,
	// neighborhood, address, poi). Empty means all supported kinds.
	Filter string

	// Country restricts results to one ISO 3166-1 alpha-2 country. Optional.
	Country string
}

// SearchResult is the outcome of a place search. Exactly one of the two
// shapes applies: Success true with Addresses populated (possibly empty), or
// Success false with FailureCode and IsInternalFailure set.
type SearchResult struct {
	Addresses         []Address   `json:"addresses"`
	Success           bool        `json:"success"`
	FailureCode       FailureCode `json:"failure_code,omitempty"`
	IsInternalFailure bool        `json:"is_internal_failure,omitempty"`
}

// LookupResult is the outcome of a single-address operation. A nil Address
// with Success true means the provider answered but the result could not be
// normalized into a valid canonical record; that is not an API failure.
type LookupResult struct {
	Address           *Address    `json:"address"`
	Success           bool        `json:"success"`
	FailureCode       FailureCode `json:"failure_code,omitempty"`
	IsInternalFailure bool        `json:"is_internal_failure,omitempty"`
}

// Geocoder normalizes provider geocoding responses into canonical addresses.
// Transport-level failures are returned as errors; provider-side failures are
// reported inside the result with Success false. Implementations hold no
// per-request state and are safe for concurrent use.
type Geocoder interface {
	// SearchPlaces resolves a free-text query into canonical addresses.
	SearchPlaces(ctx context.Context, query string, opts SearchOptions) (SearchResult, error)

	// ReverseGeocode resolves a coordinate into the nearest canonical address.
	ReverseGeocode(ctx context.Context, lat, lng float64) (LookupResult, error)

	// Geocode fills in coordinates for an existing address record.
	Geocode(ctx context.Context, address Address) (LookupResult, error)
}

// GeoData is the read-only reference data the engine consults: country,
// sub-division, and postal-code validation plus the per-country sub-division
// exception tables. Loaded once at process start and safe for concurrent use.
type GeoData interface {
	// ValidCountry reports whether code is a known ISO 3166-1 alpha-2 code.
	ValidCountry(code string) bool

	// ValidSubDivision reports whether code is a valid ISO 3166-2 region code
	// for the given country. Both arguments are case-insensitive.
	ValidSubDivision(country, code string) bool

	// ValidPostalCode reports whether code matches the country's postal format.
	ValidPostalCode(country, code string) bool

	// SanitizePostalCode returns the canonical form of a postal code.
	SanitizePostalCode(code string) string

	// SubDivisionException resolves a provider region text or non-ISO short
	// code through the country's exception table.
	SubDivisionException(country, key string) (string, bool)
}
