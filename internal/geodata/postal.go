package geodata

import (
	"regexp"
	"strings"
)

// postalPatterns holds postal-code formats by lowercase country code.
var postalPatterns = map[string]*regexp.Regexp{
	"us": regexp.MustCompile(`^\d{5}(?:-\d{4})?$`),
	"in": regexp.MustCompile(`^[1-9]\d{5}$`),
	"cn": regexp.MustCompile(`^\d{6}$`),
	"jp": regexp.MustCompile(`^\d{3}-?\d{4}$`),
	"ca": regexp.MustCompile(`^[A-Za-z]\d[A-Za-z] ?\d[A-Za-z]\d$`),
	"gb": regexp.MustCompile(`^[A-Za-z]{1,2}\d[A-Za-z\d]? ?\d[A-Za-z]{2}$`),
}

// postalFallback accepts any short alphanumeric token for countries without a
// dedicated pattern. A bad postal code never rejects a whole address, so the
// fallback errs on the permissive side.
var postalFallback = regexp.MustCompile(`^[A-Za-z\d][A-Za-z\d\- ]{1,9}$`)

// ValidPostalCode reports whether code matches the country's postal format.
func (d *Data) ValidPostalCode(country, code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}
	if re, ok := d.postal[strings.ToLower(country)]; ok {
		return re.MatchString(code)
	}
	return postalFallback.MatchString(code)
}

// SanitizePostalCode returns the canonical form: trimmed and uppercased.
func (d *Data) SanitizePostalCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
