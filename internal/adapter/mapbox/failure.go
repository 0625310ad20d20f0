package mapbox

import (
	"net/http"
	"strings"

	"github.com/addressforge/address-normalizer/internal/domain"
)

// Command names carried into diagnostics and metrics.
const (
	cmdSearchPlaces   = "search_places"
	cmdReverseGeocode = "reverse_geocode"
)

// statusFailures maps provider HTTP statuses to internal failure codes.
// Statuses outside the table classify as UNKNOWN_FAILURE.
var statusFailures = map[int]domain.FailureCode{
	http.StatusUnauthorized:        domain.FailureProviderAuthFailed,
	http.StatusForbidden:           domain.FailureProviderAccountIssue,
	http.StatusNotFound:            domain.FailureInvalidURL,
	http.StatusUnprocessableEntity: domain.FailureBadRequest,
	http.StatusTooManyRequests:     domain.FailureThrottled,
}

// classifyFailure maps a non-200 provider response to an internal failure
// code and its internal-only flag. A 422 whose message mentions an
// over-length query is refined to QUERY_TOO_LONG, the one failure a user can
// fix themselves. Pure function of its inputs.
func classifyFailure(status int, message string) (domain.FailureCode, bool) {
	code, ok := statusFailures[status]
	if !ok {
		code = domain.FailureUnknown
	}
	if status == http.StatusUnprocessableEntity && strings.Contains(message, "Query too long") {
		code = domain.FailureQueryTooLong
	}
	return code, code.IsInternal()
}
