package mapbox

import (
	"slices"
	"strings"

	"github.com/addressforge/address-normalizer/internal/domain"
	"github.com/addressforge/address-normalizer/internal/geodata"
	"github.com/addressforge/address-normalizer/internal/observability"
)

// mapper converts provider features into canonical address records.
type mapper struct {
	geodata domain.GeoData
	metrics *observability.Metrics
}

func newMapper(data domain.GeoData, metrics *observability.Metrics) *mapper {
	return &mapper{geodata: data, metrics: metrics}
}

// mapFeatures maps each feature through mapFeature, preserving input order
// and dropping records that cannot produce a valid address. Partial provider
// data is common and non-fatal at the list level. Never returns nil.
func (m *mapper) mapFeatures(features []feature) []domain.Address {
	addresses := make([]domain.Address, 0, len(features))
	for _, f := range features {
		if addr, ok := m.mapFeature(f); ok {
			addresses = append(addresses, addr)
		}
	}
	return addresses
}

// mapFeature converts one provider feature into a canonical address record.
// The second return is false when the feature lacks a resolvable country or
// sub-division; such a feature yields no record at all, never a partial one.
func (m *mapper) mapFeature(f feature) (domain.Address, bool) {
	candidate := domain.Address{
		ID:           f.ID,
		Type:         domain.AddressTypeOther,
		ProviderData: domain.ProviderData{SearchString: f.PlaceName},
	}
	if f.PlaceName != "" {
		candidate.DisplayString = f.PlaceName
	}

	// Mapbox sends the street-level line in different fields depending on the
	// place type. The two branches are mutually exclusive; first match wins.
	switch {
	case slices.Contains(f.PlaceType, "address"):
		candidate.Type = domain.AddressTypeHome
		candidate.Line1 = joinNonEmpty(f.Address, f.Text)
	case slices.Contains(f.PlaceType, "poi") && f.Properties.Address != "":
		candidate.Type = domain.AddressTypeOffice
		candidate.Line1 = joinNonEmpty(f.Properties.Address, f.Text)
	}

	if len(f.Geometry.Coordinates) >= 2 {
		// Provider coordinate order is [lng, lat].
		if lat, ok := geodata.SanitizeLatitude(f.Geometry.Coordinates[1]); ok {
			candidate.Latitude = &lat
		}
		if lng, ok := geodata.SanitizeLongitude(f.Geometry.Coordinates[0]); ok {
			candidate.Longitude = &lng
		}
	}

	var rawPostal, rawSubDivision, rawSubDivisionText string
	for _, entry := range f.Context {
		field, _, _ := strings.Cut(entry.ID, ".")
		value := entry.Text
		shortValue := strings.ToLower(entry.ShortCode)

		switch field {
		case "country":
			if shortValue != "" && m.geodata.ValidCountry(shortValue) {
				candidate.Country = shortValue
			}
		case "postcode":
			if value != "" {
				rawPostal = value
			}
		case "region":
			if shortValue != "" {
				rawSubDivision = shortValue
			} else if value != "" {
				rawSubDivisionText = value
			}
		case "district":
			if value != "" {
				candidate.Locality = value
			}
		case "place":
			if value != "" {
				candidate.Line2 = value
			}
		}
	}

	candidate.SubDivision = m.resolveSubDivision(candidate.Country, rawSubDivision, rawSubDivisionText)

	if candidate.Country == "" || candidate.SubDivision == "" {
		m.metrics.DroppedRecords.Inc()
		return domain.Address{}, false
	}

	// A bad postal code never rejects the whole record.
	if rawPostal != "" && m.geodata.ValidPostalCode(candidate.Country, rawPostal) {
		candidate.PostalCode = m.geodata.SanitizePostalCode(rawPostal)
	}

	addr, err := domain.NewAddress(candidate)
	if err != nil {
		m.metrics.DroppedRecords.Inc()
		return domain.Address{}, false
	}
	return addr, true
}

// joinNonEmpty joins the non-empty parts with single spaces.
func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
