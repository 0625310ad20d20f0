package mapbox

import (
	"regexp"
	"strings"
	"testing"

	"github.com/addressforge/address-normalizer/internal/domain"
	"github.com/addressforge/address-normalizer/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGeoData is a small, self-contained stand-in for the ISO reference
// tables so mapper tests do not depend on dataset vintage.
type stubGeoData struct{}

var stubSubDivisions = map[string][]string{
	"us": {"ct", "tx"},
	"in": {"ch", "dl", "ut"},
}

var stubExceptions = map[string]map[string]string{
	"in": {
		"uk":                 "ut",
		"Chandigarh capital": "ch",
	},
	"us": {
		// Maps an already-valid code elsewhere; used to prove a valid direct
		// short code is never overridden by the exception table.
		"tx": "ct",
	},
}

var stubUSPostal = regexp.MustCompile(`^\d{5}$`)

func (stubGeoData) ValidCountry(code string) bool {
	return code == "us" || code == "in"
}

func (stubGeoData) ValidSubDivision(country, code string) bool {
	for _, sd := range stubSubDivisions[country] {
		if strings.EqualFold(sd, code) {
			return true
		}
	}
	return false
}

func (stubGeoData) ValidPostalCode(country, code string) bool {
	if country == "us" {
		return stubUSPostal.MatchString(code)
	}
	return code != ""
}

func (stubGeoData) SanitizePostalCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (stubGeoData) SubDivisionException(country, key string) (string, bool) {
	code, ok := stubExceptions[country][key]
	return code, ok
}

func testMapper() *mapper {
	return newMapper(stubGeoData{}, observability.NewMetricsForTesting())
}

// footeStreet is a reverse-geocode feature for a street address in New Haven.
func footeStreet() feature {
	return feature{
		ID:        "address.123",
		PlaceType: []string{"address"},
		Text:      "Dixwell",
		PlaceName: "55 Foote St, New Haven, Connecticut 06511, United States",
		Address:   "55 Foote St",
		Geometry:  geometry{Coordinates: []float64{-72.93277, 41.31815}},
		Context: []contextEntry{
			{ID: "postcode.456", Text: "06511"},
			{ID: "district.789", Text: "New Haven County"},
			{ID: "place.321", Text: "New Haven"},
			{ID: "region.654", Text: "Connecticut", ShortCode: "US-CT"},
			{ID: "country.987", Text: "United States", ShortCode: "us"},
		},
	}
}

func TestMapFeature_StreetAddress(t *testing.T) {
	addr, ok := testMapper().mapFeature(footeStreet())
	require.True(t, ok)

	assert.Equal(t, "address.123", addr.ID)
	assert.Equal(t, domain.AddressTypeHome, addr.Type)
	assert.Equal(t, "55 Foote St Dixwell", addr.Line1)
	assert.Equal(t, "us", addr.Country)
	assert.Equal(t, "ct", addr.SubDivision)
	assert.Equal(t, "06511", addr.PostalCode)
	assert.Equal(t, "New Haven County", addr.Locality)
	assert.Equal(t, "New Haven", addr.Line2)
	assert.Equal(t, "55 Foote St, New Haven, Connecticut 06511, United States", addr.DisplayString)
	assert.Equal(t, addr.DisplayString, addr.ProviderData.SearchString)

	require.NotNil(t, addr.Latitude)
	require.NotNil(t, addr.Longitude)
	assert.Equal(t, 41.31815, *addr.Latitude)
	assert.Equal(t, -72.93277, *addr.Longitude)
}

func TestMapFeature_POIWithAddress(t *testing.T) {
	f := footeStreet()
	f.PlaceType = []string{"poi"}
	f.Address = ""
	f.Properties = properties{Address: "55 Foote St"}

	addr, ok := testMapper().mapFeature(f)
	require.True(t, ok)
	assert.Equal(t, domain.AddressTypeOffice, addr.Type)
	assert.Equal(t, "55 Foote St Dixwell", addr.Line1)
}

func TestMapFeature_POIWithoutAddress(t *testing.T) {
	f := footeStreet()
	f.PlaceType = []string{"poi"}
	f.Address = ""

	addr, ok := testMapper().mapFeature(f)
	require.True(t, ok)
	assert.Equal(t, domain.AddressTypeOther, addr.Type)
	assert.Empty(t, addr.Line1)
}

func TestMapFeature_AddressFieldMissing(t *testing.T) {
	f := footeStreet()
	f.Address = ""

	addr, ok := testMapper().mapFeature(f)
	require.True(t, ok)
	assert.Equal(t, "Dixwell", addr.Line1, "empty parts are dropped from line1")
}

func TestMapFeature_MissingCountry(t *testing.T) {
	f := footeStreet()
	f.Context = []contextEntry{
		{ID: "region.654", Text: "Connecticut", ShortCode: "US-CT"},
	}

	_, ok := testMapper().mapFeature(f)
	assert.False(t, ok, "no resolvable country means no record at all")
}

func TestMapFeature_MissingSubDivision(t *testing.T) {
	f := footeStreet()
	f.Context = []contextEntry{
		{ID: "country.987", Text: "United States", ShortCode: "us"},
	}

	_, ok := testMapper().mapFeature(f)
	assert.False(t, ok)
}

func TestMapFeature_ExceptionTextRegion(t *testing.T) {
	f := feature{
		ID:        "place.1",
		PlaceType: []string{"place"},
		Text:      "Chandigarh",
		PlaceName: "Chandigarh, India",
		Context: []contextEntry{
			{ID: "region.11", Text: "Chandigarh capital"},
			{ID: "country.22", Text: "India", ShortCode: "in"},
		},
	}

	addr, ok := testMapper().mapFeature(f)
	require.True(t, ok)
	assert.Equal(t, "in", addr.Country)
	assert.Equal(t, "ch", addr.SubDivision)
	assert.Equal(t, domain.AddressTypeOther, addr.Type)
}

func TestMapFeature_BadPostalCodeTolerated(t *testing.T) {
	f := footeStreet()
	f.Context[0].Text = "not-a-zip"

	addr, ok := testMapper().mapFeature(f)
	require.True(t, ok, "a bad postal code never rejects the record")
	assert.Empty(t, addr.PostalCode)
}

func TestMapFeature_OutOfRangeCoordinate(t *testing.T) {
	f := footeStreet()
	f.Geometry.Coordinates = []float64{-72.93277, 95.0}

	addr, ok := testMapper().mapFeature(f)
	require.True(t, ok)
	assert.Nil(t, addr.Latitude, "out-of-range latitude is rejected")
	require.NotNil(t, addr.Longitude)
	assert.Equal(t, -72.93277, *addr.Longitude)
}

func TestMapFeature_NoCoordinates(t *testing.T) {
	f := footeStreet()
	f.Geometry.Coordinates = nil

	addr, ok := testMapper().mapFeature(f)
	require.True(t, ok)
	assert.Nil(t, addr.Latitude)
	assert.Nil(t, addr.Longitude)
}

func TestMapFeatures(t *testing.T) {
	m := testMapper()

	t.Run("preserves order and drops invalid records", func(t *testing.T) {
		first := footeStreet()
		second := footeStreet()
		second.Context = nil // unmappable
		third := footeStreet()
		third.PlaceName = "Whitney Ave, Hamden, Connecticut 06518, United States"

		addresses := m.mapFeatures([]feature{first, second, third})
		require.Len(t, addresses, 2)
		assert.Equal(t, first.PlaceName, addresses[0].DisplayString)
		assert.Equal(t, third.PlaceName, addresses[1].DisplayString)
	})

	t.Run("empty input yields empty non-nil list", func(t *testing.T) {
		addresses := m.mapFeatures(nil)
		require.NotNil(t, addresses)
		assert.Empty(t, addresses)
	})
}
