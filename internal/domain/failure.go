package domain

// FailureCode identifies a provider-side failure in provider-independent
// terms. Codes are stable: downstream systems branch on them, so a new
// provider error maps onto an existing code or adds a new constant here.
type FailureCode string

const (
	FailureProviderAuthFailed   FailureCode = "PROVIDER_AUTH_FAILED"   // invalid or expired access token
	FailureProviderAccountIssue FailureCode = "PROVIDER_ACCOUNT_ISSUE" // forbidden; account or plan problem
	FailureInvalidURL           FailureCode = "INVALID_URL"            // endpoint not found
	FailureBadRequest           FailureCode = "BAD_REQUEST"            // provider rejected the parameters
	FailureThrottled            FailureCode = "THROTTLED"              // provider rate limit exceeded
	FailureQueryTooLong         FailureCode = "QUERY_TOO_LONG"         // search string over the provider limit
	FailureUnknown              FailureCode = "UNKNOWN_FAILURE"
)

// userFacing lists the codes whose message is safe to surface verbatim to an
// end user. Everything else is internal-only by default, including codes not
// present in the table at all.
var userFacing = map[FailureCode]bool{
	FailureQueryTooLong: true,
}

// IsInternal reports whether the failure must not be shown verbatim to an end
// user (operational, auth, or provider account issues).
func (c FailureCode) IsInternal() bool {
	return !userFacing[c]
}
