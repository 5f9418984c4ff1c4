package commitment

import "errors"

var (
	// ErrNotAuthenticated indicates no verified user is available for the write.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrApplicationNotEligible indicates the application does not exist, is
	// not owned by the caller, or is not in reporting status.
	ErrApplicationNotEligible = errors.New("application not eligible for commitments")

	// ErrIllegalTransition is the expected "already recorded today" outcome:
	// the requested state is not reachable from the stored state. Callers
	// should render it as feedback, not as a failure.
	ErrIllegalTransition = errors.New("commitment already recorded for today")

	// ErrStoreUnavailable indicates a backing read or write failed. The only
	// error kind a caller may reasonably retry; this package never retries.
	ErrStoreUnavailable = errors.New("commitment store unavailable")

	// ErrMalformedInput indicates an unknown desired state or empty id.
	ErrMalformedInput = errors.New("malformed input")
)
