package geodata

// SanitizeLatitude bounds-checks a raw provider latitude. The second return
// is false for out-of-range input.
func SanitizeLatitude(v float64) (float64, bool) {
	if v < -90 || v > 90 {
		return 0, false
	}
	return v, true
}

// SanitizeLongitude bounds-checks a raw provider longitude.
func SanitizeLongitude(v float64) (float64, bool) {
	if v < -180 || v > 180 {
		return 0, false
	}
	return v, true
}
