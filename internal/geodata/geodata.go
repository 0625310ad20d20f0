// Package geodata provides the static reference tables the normalization
// engine consults: ISO 3166 country and sub-division validation (backed by
// the embedded dataset in github.com/pariz/gountries), per-country postal
// code formats, per-country sub-division exception tables, and coordinate
// sanitizers. Everything here is loaded once at process start and read-only
// afterwards, so concurrent lookups need no locking.
package geodata

import (
	"regexp"
	"strings"

	"github.com/pariz/gountries"
)

// Data implements domain.GeoData over the process-wide reference tables.
type Data struct {
	query      *gountries.Query
	exceptions map[string]map[string]string
	postal     map[string]*regexp.Regexp
}

// Load builds the reference tables. Call once at startup and share the result.
func Load() *Data {
	return &Data{
		query:      gountries.New(),
		exceptions: subDivisionExceptions,
		postal:     postalPatterns,
	}
}

// ValidCountry reports whether code is a known ISO 3166-1 alpha-2 code.
func (d *Data) ValidCountry(code string) bool {
	if len(code) != 2 {
		return false
	}
	_, err := d.query.FindCountryByAlpha(code)
	return err == nil
}

// ValidSubDivision reports whether code is a valid ISO 3166-2 region code for
// the given country. Comparison is case-insensitive; our canonical codes are
// lowercase while the ISO dataset carries uppercase.
func (d *Data) ValidSubDivision(country, code string) bool {
	if country == "" || code == "" {
		return false
	}
	c, err := d.query.FindCountryByAlpha(country)
	if err != nil {
		return false
	}
	for _, sd := range c.SubDivisions() {
		if strings.EqualFold(sd.Code, code) {
			return true
		}
	}
	return false
}

// SubDivisionException resolves a provider region text or non-ISO short code
// through the country's exception table.
func (d *Data) SubDivisionException(country, key string) (string, bool) {
	table, ok := d.exceptions[strings.ToLower(country)]
	if !ok {
		return "", false
	}
	code, ok := table[key]
	return code, ok
}
