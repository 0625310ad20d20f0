package mapbox

import "strings"

// resolveSubDivision resolves a provider region hint to a validated ISO 3166-2
// sub-division code, or "" when neither tier succeeds.
//
// Tier A runs when a short code was sent: strip the country prefix
// ("us-ct" → "ct") and validate directly; on failure, try the short code
// through the country's exception table (some providers use short codes
// outside ISO convention, India's union territories in particular).
//
// Tier B runs only when tier A yielded nothing and the region arrived as
// display text with no short code at all: the raw text goes through the same
// exception table.
func (m *mapper) resolveSubDivision(country, shortCode, exceptionText string) string {
	if country != "" && shortCode != "" {
		code := shortCode[strings.LastIndex(shortCode, "-")+1:]
		if m.geodata.ValidSubDivision(country, code) {
			return code
		}
		if resolved, ok := m.exception(country, shortCode); ok {
			return resolved
		}
		if resolved, ok := m.exception(country, code); ok {
			return resolved
		}
	}

	if country != "" && exceptionText != "" {
		if resolved, ok := m.exception(country, exceptionText); ok {
			return resolved
		}
	}

	return ""
}

// exception looks key up in the country's exception table and validates the
// mapped code before trusting it.
func (m *mapper) exception(country, key string) (string, bool) {
	code, ok := m.geodata.SubDivisionException(country, key)
	if !ok || !m.geodata.ValidSubDivision(country, code) {
		return "", false
	}
	return code, true
}
