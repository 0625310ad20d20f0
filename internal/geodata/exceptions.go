package geodata

// subDivisionExceptions maps provider region identifiers that fall outside
// ISO 3166-2 convention to canonical sub-division codes, keyed by lowercase
// country. Keys are either the stripped short code the provider sent (region
// short codes are lowercased before lookup) or the verbatim region display
// text when no short code was sent at all.
//
// Mapbox is inconsistent for India: union territories and renamed states
// arrive with legacy short codes or plain text, so India carries the bulk of
// the table. Extending coverage for another country is a data change here,
// never a code change.
var subDivisionExceptions = map[string]map[string]string{
	"in": {
		// Short codes outside ISO 3166-2 convention.
		"uk": "ut", // Uttarakhand: provider sends IN-UK, ISO uses IN-UT
		"or": "or", // Odisha: kept for symmetry with the legacy "Orissa" text

		// Region entries that arrive with display text only.
		"Chandigarh capital":          "ch",
		"Delhi":                       "dl",
		"National Capital Territory of Delhi": "dl",
		"Jammu and Kashmir":           "jk",
		"Ladakh":                      "la",
		"Pondicherry":                 "py",
		"Puducherry":                  "py",
		"Orissa":                      "or",
		"Andaman and Nicobar Islands": "an",
		"Lakshadweep":                 "ld",
	},
}
