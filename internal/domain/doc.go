// Package domain models the canonical address representation produced by the
// normalization engine, the stable failure taxonomy for provider errors, and
// the capability interfaces the engine consumes.
//
// # Canonical Address Record
//
// An Address is the provider-independent output unit. Country and sub-division
// are mandatory: a candidate that cannot resolve both is not a valid address
// and is discarded rather than returned partially populated. All remaining
// fields are optional. Country and sub-division codes are lowercase ISO 3166-1
// alpha-2 and ISO 3166-2 region codes respectively.
//
// # Provider Conventions (Mapbox Geocoding API v5)
//
// Each result ("feature") carries:
//
//	place_type  — tags such as "address" or "poi"; decides which field holds
//	              the street-level line and which address type applies.
//	text        — the feature's own label.
//	address     — house number, present only for place_type "address".
//	properties.address — street line, present only for some POIs.
//	geometry.coordinates — [longitude, latitude], in that provider order.
//	context     — list of enclosing hierarchy entries. Each entry has an id
//	              prefixed with its field kind ("country.123", "region.456",
//	              "district", "place", "postcode"), a display text, and an
//	              optional short_code ("us", "US-CT").
//
// Region short codes follow the "COUNTRY-REGION" convention but not always
// ISO 3166-2: India's union territories in particular arrive with legacy or
// free-text identifiers. Those are resolved through per-country exception
// tables in the geodata package.
//
// # Failure Taxonomy
//
// Provider HTTP failures are classified into FailureCode values. Every code is
// internal-only (unsafe to show an end user verbatim) except QUERY_TOO_LONG,
// which a user can act on. Classification is a pure function of the response
// status and body; adding a new provider error means adding a table entry,
// never new branching logic.
package domain
